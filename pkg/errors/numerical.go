package errors

import (
	"math"
)

// CheckNumericalStability returns a NumericalInstabilityError if any value is
// NaN or Inf.
func CheckNumericalStability(operation string, values []float64, epoch int) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values, epoch)
		}
	}
	return nil
}

// CheckScalar checks a single value for numerical instability.
func CheckScalar(operation string, value float64, epoch int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, epoch)
	}
	return nil
}
