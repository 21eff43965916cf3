package neural

import "math"

// adam holds Adam optimizer state for one parameter group.
type adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64

	m []float64 // first moment
	v []float64 // second moment
	t int       // update count, shared bias-correction step
}

func newAdam(lr float64, size int) *adam {
	return &adam{
		lr:    lr,
		beta1: 0.9,
		beta2: 0.999,
		eps:   1e-8,
		m:     make([]float64, size),
		v:     make([]float64, size),
	}
}

// step applies one Adam update to params in place using grads.
func (a *adam) step(params, grads []float64) {
	a.t++
	c1 := 1 - math.Pow(a.beta1, float64(a.t))
	c2 := 1 - math.Pow(a.beta2, float64(a.t))

	for i, g := range grads {
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g

		mHat := a.m[i] / c1
		vHat := a.v[i] / c2
		params[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}
}
