// Package errors provides structured error handling and a warning system for
// ConvCast. Errors carry stack traces via cockroachdb/errors and marshal
// themselves into zerolog events for structured logging.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("convcast-warning: %v\n", w)
	}
	// zerolog sink, injected by pkg/log to avoid a circular import
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the library-wide warning handler. Use it to
// silence or redirect non-fatal training warnings such as ConvergenceWarning.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink. When set it takes
// precedence over the plain handler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a non-fatal warning through the configured sink.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ConvergenceWarning is raised when training finishes without the loss
// improving over its starting value.
type ConvergenceWarning struct {
	Model     string
	Epochs    int
	FinalLoss float64
}

func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("%s did not converge after %d epochs (final loss %.6g). Consider more epochs or a lower learning rate.",
		w.Model, w.Epochs, w.FinalLoss)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *ConvergenceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("model", w.Model).
		Int("epochs", w.Epochs).
		Float64("final_loss", w.FinalLoss).
		Str("type", "ConvergenceWarning")
}

// NewConvergenceWarning creates a new ConvergenceWarning.
func NewConvergenceWarning(model string, epochs int, finalLoss float64) *ConvergenceWarning {
	return &ConvergenceWarning{Model: model, Epochs: epochs, FinalLoss: finalLoss}
}

// NotFittedError is returned when Predict, Transform or Score is called on a
// model that has not been fitted yet.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("convcast: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when input data has an unexpected shape.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("convcast: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError is returned when a parameter fails validation, for example a
// window length that is zero, negative, or not smaller than the series.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("convcast: invalid argument '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError is returned when an argument's value is unsuitable for the
// requested operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("convcast: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError is a general model-level error with an operation and a kind.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("convcast: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("convcast: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace attached.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// NumericalInstabilityError reports NaN or Inf values detected during
// training or evaluation.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Epoch     int
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("convcast: numerical instability detected in %s at epoch %d. Values: [%s]",
		e.Operation, e.Epoch, valStr)
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a
// stack trace attached.
func NewNumericalInstabilityError(operation string, values []float64, epoch int) error {
	err := &NumericalInstabilityError{Operation: operation, Values: values, Epoch: epoch}
	return errors.WithStack(err)
}

// Wrappers around cockroachdb/errors so callers only import this package.

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

var (
	// ErrEmptyData is returned when an operation receives no data.
	ErrEmptyData = New("empty data")
)
