package neural

import "math"

// Activation selects the nonlinearity applied after the convolution and the
// hidden dense layer. The output layer is always linear.
type Activation int

const (
	// ReLU is max(0, x).
	ReLU Activation = iota
	// Tanh is the hyperbolic tangent.
	Tanh
)

// String returns the activation's conventional name.
func (a Activation) String() string {
	switch a {
	case ReLU:
		return "relu"
	case Tanh:
		return "tanh"
	default:
		return "unknown"
	}
}

func (a Activation) valid() bool {
	return a == ReLU || a == Tanh
}

// apply evaluates the activation at pre-activation x.
func (a Activation) apply(x float64) float64 {
	switch a {
	case Tanh:
		return math.Tanh(x)
	default:
		if x > 0 {
			return x
		}
		return 0
	}
}

// deriv evaluates the activation's derivative given the pre-activation value
// and the already-computed activation output.
func (a Activation) deriv(pre, out float64) float64 {
	switch a {
	case Tanh:
		return 1 - out*out
	default:
		if pre > 0 {
			return 1
		}
		return 0
	}
}
