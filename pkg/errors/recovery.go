package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is an error created from a recovered panic. It keeps the original
// panic value and the stack trace captured at recovery time.
type PanicError struct {
	PanicValue interface{}
	StackTrace string
	Operation  string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// String includes the captured stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError creates a PanicError for the given operation and panic value.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts a panic into an error. Use with defer, passing a pointer to
// the function's named error return:
//
//	func (m *Conv1DRegressor) Fit(X, y mat.Matrix) (err error) {
//	    defer errors.Recover(&err, "Conv1DRegressor.Fit")
//	    ...
//	}
//
// If err already holds an error when a panic occurs, the panic error takes
// precedence and the original error is attached as context.
func Recover(err *error, operation string) {
	if r := recover(); r != nil {
		panicErr := NewPanicError(operation, r)
		if *err != nil {
			*err = Wrapf(WithStack(panicErr), "original error: %v", *err)
		} else {
			*err = WithStack(panicErr)
		}
	}
}
