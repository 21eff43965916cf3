package errors

import (
	"math"
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("Conv1DRegressor", "Predict")
	if err == nil {
		t.Fatal("NewNotFittedError returned nil")
	}

	var nfe *NotFittedError
	if !As(err, &nfe) {
		t.Fatal("error is not a *NotFittedError")
	}
	if nfe.ModelName != "Conv1DRegressor" || nfe.Method != "Predict" {
		t.Errorf("unexpected fields: %+v", nfe)
	}
	if !strings.Contains(err.Error(), "not fitted yet") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("seq_length", "must be positive", -3)

	var ve *ValidationError
	if !As(err, &ve) {
		t.Fatal("error is not a *ValidationError")
	}
	if ve.ParamName != "seq_length" {
		t.Errorf("ParamName = %s, want seq_length", ve.ParamName)
	}
	if !strings.Contains(err.Error(), "invalid argument") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("Predict", 10, 7, 1)

	var de *DimensionError
	if !As(err, &de) {
		t.Fatal("error is not a *DimensionError")
	}
	if de.Expected != 10 || de.Got != 7 {
		t.Errorf("unexpected fields: %+v", de)
	}
	if !strings.Contains(err.Error(), "features") {
		t.Errorf("axis 1 should report features: %s", err.Error())
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	inner := New("boom")
	err := NewModelError("Fit", "training failed", inner)

	if !Is(err, inner) {
		t.Error("ModelError should unwrap to the inner error")
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	w := NewConvergenceWarning("Conv1DRegressor", 20, 1.5)
	Warn(w)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	if !strings.Contains(captured.Error(), "did not converge") {
		t.Errorf("unexpected warning: %v", captured)
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("loss", []float64{0.1, 0.2}, 3); err != nil {
		t.Errorf("stable values flagged: %v", err)
	}

	err := CheckScalar("loss", math.NaN(), 5)
	if err == nil {
		t.Fatal("NaN not detected")
	}
	var nie *NumericalInstabilityError
	if !As(err, &nie) {
		t.Fatal("error is not a *NumericalInstabilityError")
	}
	if nie.Epoch != 5 {
		t.Errorf("Epoch = %d, want 5", nie.Epoch)
	}
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "test.fn")
		panic("unexpected state")
	}

	err := fn()
	if err == nil {
		t.Fatal("panic was not converted to an error")
	}
	var pe *PanicError
	if !As(err, &pe) {
		t.Fatal("error is not a *PanicError")
	}
	if pe.Operation != "test.fn" {
		t.Errorf("Operation = %s, want test.fn", pe.Operation)
	}
}
