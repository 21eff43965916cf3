// Package neural provides neural network models for time-series regression.
//
// The package currently implements Conv1DRegressor, a small one-dimensional
// convolutional network for next-step forecasting:
//
//	Conv1D(filters, kernel, activation) -> MaxPool1D(pool) -> Flatten ->
//	Dense(units, activation) -> Dense(1)
//
// The network is trained with mini-batch gradient descent using the Adam
// optimizer and mean squared error loss. Training is single-threaded and
// deterministic for a fixed seed.
package neural

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/convforge/convcast/core/model"
	"github.com/convforge/convcast/metrics"
	"github.com/convforge/convcast/pkg/errors"
	"github.com/convforge/convcast/pkg/log"
)

const modelName = "Conv1DRegressor"

// History records per-epoch losses from the most recent Fit call.
type History struct {
	// TrainLoss is the mean squared error on the training data, one entry
	// per epoch.
	TrainLoss []float64

	// ValLoss is the mean squared error on the validation data, one entry
	// per epoch. Empty when no validation data was configured.
	ValLoss []float64
}

// Conv1DRegressor is a 1-D convolutional network for single-step regression
// over fixed-length input windows.
type Conv1DRegressor struct {
	model.BaseEstimator

	seqLength  int
	filters    int
	kernelSize int
	poolSize   int
	denseUnits int
	activation Activation

	learningRate float64
	epochs       int
	batchSize    int
	seed         uint64

	valX   mat.Matrix
	valY   mat.Matrix
	logger log.Logger

	// derived layer dimensions, fixed at Fit time
	convLen int // seqLength - kernelSize + 1
	poolLen int // convLen / poolSize
	flatLen int // filters * poolLen

	// learned parameters
	convW   []float64 // filters × kernelSize
	convB   []float64 // filters
	dense1W []float64 // denseUnits × flatLen
	dense1B []float64 // denseUnits
	dense2W []float64 // denseUnits
	dense2B []float64 // 1

	history History
}

// NewConv1DRegressor creates a regressor for input windows of length
// seqLength. Defaults follow a small forecasting network: 64 filters, kernel
// 3, pool 2, 50 dense units, learning rate 0.001, 20 epochs, batch size 32.
func NewConv1DRegressor(seqLength int, opts ...Option) *Conv1DRegressor {
	m := &Conv1DRegressor{
		seqLength:    seqLength,
		filters:      64,
		kernelSize:   3,
		poolSize:     2,
		denseUnits:   50,
		activation:   ReLU,
		learningRate: 0.001,
		epochs:       20,
		batchSize:    32,
		seed:         42,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.GetLogger().With(
			log.ModelNameKey, modelName,
			log.ComponentKey, "neural",
		)
	}
	return m
}

func (m *Conv1DRegressor) validate() error {
	switch {
	case m.seqLength <= 0:
		return errors.NewValidationError("seq_length", "must be positive", m.seqLength)
	case m.filters <= 0:
		return errors.NewValidationError("filters", "must be positive", m.filters)
	case m.kernelSize <= 0 || m.kernelSize > m.seqLength:
		return errors.NewValidationError("kernel_size",
			"must be in [1, seq_length]", m.kernelSize)
	case m.poolSize <= 0:
		return errors.NewValidationError("pool_size", "must be positive", m.poolSize)
	case m.denseUnits <= 0:
		return errors.NewValidationError("dense_units", "must be positive", m.denseUnits)
	case !m.activation.valid():
		return errors.NewValidationError("activation", "unknown activation kind", int(m.activation))
	case m.learningRate <= 0:
		return errors.NewValidationError("learning_rate", "must be positive", m.learningRate)
	case m.epochs <= 0:
		return errors.NewValidationError("epochs", "must be positive", m.epochs)
	case m.batchSize <= 0:
		return errors.NewValidationError("batch_size", "must be positive", m.batchSize)
	}

	convLen := m.seqLength - m.kernelSize + 1
	if convLen/m.poolSize < 1 {
		return errors.NewValidationError("pool_size",
			"pooling would leave no output; shrink pool_size or kernel_size", m.poolSize)
	}
	return nil
}

// Fit trains the network on X (n_samples × seq_length) and y (n_samples × 1)
// with Adam and MSE loss. Per-epoch losses are available via History after
// training. When validation data is configured its loss is recorded every
// epoch but never used for weight updates.
func (m *Conv1DRegressor) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Conv1DRegressor.Fit")

	if err := m.validate(); err != nil {
		return err
	}

	n, c := X.Dims()
	if n == 0 || c == 0 {
		return errors.NewModelError("Conv1DRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if c != m.seqLength {
		return errors.NewDimensionError("Conv1DRegressor.Fit", m.seqLength, c, 1)
	}
	ry, cy := y.Dims()
	if ry != n {
		return errors.NewDimensionError("Conv1DRegressor.Fit", n, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("Conv1DRegressor.Fit", "y must be a column vector")
	}
	if m.valX != nil {
		vr, vc := m.valX.Dims()
		if vc != m.seqLength {
			return errors.NewDimensionError("Conv1DRegressor.Fit", m.seqLength, vc, 1)
		}
		vry, _ := m.valY.Dims()
		if vry != vr {
			return errors.NewDimensionError("Conv1DRegressor.Fit", vr, vry, 0)
		}
	}

	m.convLen = m.seqLength - m.kernelSize + 1
	m.poolLen = m.convLen / m.poolSize
	m.flatLen = m.filters * m.poolLen

	rng := rand.New(rand.NewPCG(m.seed, m.seed))
	m.initWeights(rng)

	m.history = History{}
	optConvW := newAdam(m.learningRate, len(m.convW))
	optConvB := newAdam(m.learningRate, len(m.convB))
	optDense1W := newAdam(m.learningRate, len(m.dense1W))
	optDense1B := newAdam(m.learningRate, len(m.dense1B))
	optDense2W := newAdam(m.learningRate, len(m.dense2W))
	optDense2B := newAdam(m.learningRate, len(m.dense2B))

	st := m.newForwardState()
	g := m.newGradients()
	x := make([]float64, m.seqLength)

	m.logger.Info("training started",
		log.OperationKey, "fit",
		log.SamplesKey, n,
		log.WindowLengthKey, m.seqLength,
		log.BatchSizeKey, m.batchSize,
	)
	start := time.Now()

	for epoch := 0; epoch < m.epochs; epoch++ {
		perm := rng.Perm(n)
		var epochSSE float64

		for batchStart := 0; batchStart < n; batchStart += m.batchSize {
			batchEnd := batchStart + m.batchSize
			if batchEnd > n {
				batchEnd = n
			}
			batchN := float64(batchEnd - batchStart)
			g.zero()

			for _, idx := range perm[batchStart:batchEnd] {
				mat.Row(x, idx, X)
				out := m.forward(x, st)
				e := out - y.At(idx, 0)
				epochSSE += e * e
				m.backward(x, st, 2*e/batchN, g)
			}

			optConvW.step(m.convW, g.convW)
			optConvB.step(m.convB, g.convB)
			optDense1W.step(m.dense1W, g.dense1W)
			optDense1B.step(m.dense1B, g.dense1B)
			optDense2W.step(m.dense2W, g.dense2W)
			optDense2B.step(m.dense2B, g.dense2B)
		}

		trainLoss := epochSSE / float64(n)
		if err := errors.CheckScalar("training loss", trainLoss, epoch); err != nil {
			return err
		}
		m.history.TrainLoss = append(m.history.TrainLoss, trainLoss)

		fields := []any{log.EpochKey, epoch, log.LossKey, trainLoss}
		if m.valX != nil {
			valLoss := m.evalLoss(m.valX, m.valY, st)
			if err := errors.CheckScalar("validation loss", valLoss, epoch); err != nil {
				return err
			}
			m.history.ValLoss = append(m.history.ValLoss, valLoss)
			fields = append(fields, log.ValLossKey, valLoss)
		}
		m.logger.Debug("epoch finished", fields...)
	}

	if last := len(m.history.TrainLoss) - 1; last > 0 &&
		m.history.TrainLoss[last] >= m.history.TrainLoss[0] {
		errors.Warn(errors.NewConvergenceWarning(modelName, m.epochs, m.history.TrainLoss[last]))
	}

	m.logger.Info("training finished",
		log.OperationKey, "fit",
		log.LossKey, m.history.TrainLoss[len(m.history.TrainLoss)-1],
		log.DurationKey, time.Since(start),
	)

	m.SetFitted()
	return nil
}

// Predict returns one-step forecasts for X (n_samples × seq_length) as an
// n_samples × 1 matrix.
func (m *Conv1DRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError(modelName, "Predict")
	}
	n, c := X.Dims()
	if c != m.seqLength {
		return nil, errors.NewDimensionError("Conv1DRegressor.Predict", m.seqLength, c, 1)
	}

	st := m.newForwardState()
	x := make([]float64, m.seqLength)
	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		mat.Row(x, i, X)
		out.Set(i, 0, m.forward(x, st))
	}
	return out, nil
}

// Score returns the coefficient of determination R² on the given data.
func (m *Conv1DRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !m.IsFitted() {
		return 0, errors.NewNotFittedError(modelName, "Score")
	}
	pred, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2ScoreMatrix(y, pred)
}

// History returns the per-epoch losses recorded by the last Fit call.
func (m *Conv1DRegressor) History() History {
	h := History{
		TrainLoss: make([]float64, len(m.history.TrainLoss)),
		ValLoss:   make([]float64, len(m.history.ValLoss)),
	}
	copy(h.TrainLoss, m.history.TrainLoss)
	copy(h.ValLoss, m.history.ValLoss)
	return h
}

// initWeights draws Glorot-uniform initial weights and zero biases.
func (m *Conv1DRegressor) initWeights(rng *rand.Rand) {
	m.convW = glorot(rng, m.filters*m.kernelSize, m.kernelSize, m.filters)
	m.convB = make([]float64, m.filters)
	m.dense1W = glorot(rng, m.denseUnits*m.flatLen, m.flatLen, m.denseUnits)
	m.dense1B = make([]float64, m.denseUnits)
	m.dense2W = glorot(rng, m.denseUnits, m.denseUnits, 1)
	m.dense2B = make([]float64, 1)
}

func glorot(rng *rand.Rand, size, fanIn, fanOut int) []float64 {
	limit := math.Sqrt(6.0 / float64(fanIn+fanOut))
	w := make([]float64, size)
	for i := range w {
		w[i] = (rng.Float64()*2 - 1) * limit
	}
	return w
}

// forwardState holds per-sample intermediate activations reused across calls.
type forwardState struct {
	conv    []float64 // filters × convLen, pre-activation
	act     []float64 // filters × convLen, after activation
	pooled  []float64 // flatLen
	argmax  []int     // flatLen, absolute index into act
	hPre    []float64 // denseUnits, pre-activation
	h       []float64 // denseUnits, after activation
	dPooled []float64 // flatLen, scratch for backward
}

func (m *Conv1DRegressor) newForwardState() *forwardState {
	return &forwardState{
		conv:    make([]float64, m.filters*m.convLen),
		act:     make([]float64, m.filters*m.convLen),
		pooled:  make([]float64, m.flatLen),
		argmax:  make([]int, m.flatLen),
		hPre:    make([]float64, m.denseUnits),
		h:       make([]float64, m.denseUnits),
		dPooled: make([]float64, m.flatLen),
	}
}

// forward runs one sample through the network and returns the scalar output.
func (m *Conv1DRegressor) forward(x []float64, st *forwardState) float64 {
	// Conv1D, valid padding
	for f := 0; f < m.filters; f++ {
		wOff := f * m.kernelSize
		cOff := f * m.convLen
		for t := 0; t < m.convLen; t++ {
			s := m.convB[f]
			for k := 0; k < m.kernelSize; k++ {
				s += m.convW[wOff+k] * x[t+k]
			}
			st.conv[cOff+t] = s
			st.act[cOff+t] = m.activation.apply(s)
		}
	}

	// MaxPool1D, non-overlapping windows of poolSize
	for f := 0; f < m.filters; f++ {
		cOff := f * m.convLen
		pOff := f * m.poolLen
		for p := 0; p < m.poolLen; p++ {
			best := cOff + p*m.poolSize
			for t := best + 1; t < cOff+(p+1)*m.poolSize; t++ {
				if st.act[t] > st.act[best] {
					best = t
				}
			}
			st.pooled[pOff+p] = st.act[best]
			st.argmax[pOff+p] = best
		}
	}

	// Dense hidden layer
	for u := 0; u < m.denseUnits; u++ {
		wOff := u * m.flatLen
		s := m.dense1B[u]
		for j := 0; j < m.flatLen; j++ {
			s += m.dense1W[wOff+j] * st.pooled[j]
		}
		st.hPre[u] = s
		st.h[u] = m.activation.apply(s)
	}

	// Linear output
	out := m.dense2B[0]
	for u := 0; u < m.denseUnits; u++ {
		out += m.dense2W[u] * st.h[u]
	}
	return out
}

// gradients accumulates parameter gradients over a mini-batch.
type gradients struct {
	convW   []float64
	convB   []float64
	dense1W []float64
	dense1B []float64
	dense2W []float64
	dense2B []float64
}

func (m *Conv1DRegressor) newGradients() *gradients {
	return &gradients{
		convW:   make([]float64, len(m.convW)),
		convB:   make([]float64, len(m.convB)),
		dense1W: make([]float64, len(m.dense1W)),
		dense1B: make([]float64, len(m.dense1B)),
		dense2W: make([]float64, len(m.dense2W)),
		dense2B: make([]float64, len(m.dense2B)),
	}
}

func (g *gradients) zero() {
	clear(g.convW)
	clear(g.convB)
	clear(g.dense1W)
	clear(g.dense1B)
	clear(g.dense2W)
	clear(g.dense2B)
}

// backward accumulates gradients for one sample given dOut = dLoss/dOutput.
// It must be called with the forwardState produced by forward for the same x.
func (m *Conv1DRegressor) backward(x []float64, st *forwardState, dOut float64, g *gradients) {
	// Output layer
	g.dense2B[0] += dOut
	clear(st.dPooled)
	for u := 0; u < m.denseUnits; u++ {
		g.dense2W[u] += dOut * st.h[u]

		d := m.activation.deriv(st.hPre[u], st.h[u])
		if d == 0 {
			continue
		}
		dh := dOut * m.dense2W[u] * d
		g.dense1B[u] += dh
		wOff := u * m.flatLen
		for j := 0; j < m.flatLen; j++ {
			g.dense1W[wOff+j] += dh * st.pooled[j]
			st.dPooled[j] += dh * m.dense1W[wOff+j]
		}
	}

	// Unpool: gradient flows only to the argmax position, then through the
	// convolution activation to the filter weights.
	for f := 0; f < m.filters; f++ {
		cOff := f * m.convLen
		pOff := f * m.poolLen
		wOff := f * m.kernelSize
		for p := 0; p < m.poolLen; p++ {
			dp := st.dPooled[pOff+p]
			if dp == 0 {
				continue
			}
			best := st.argmax[pOff+p]
			dConv := dp * m.activation.deriv(st.conv[best], st.act[best])
			if dConv == 0 {
				continue
			}
			t := best - cOff
			g.convB[f] += dConv
			for k := 0; k < m.kernelSize; k++ {
				g.convW[wOff+k] += dConv * x[t+k]
			}
		}
	}
}

// evalLoss computes forward-only MSE over a dataset.
func (m *Conv1DRegressor) evalLoss(X, y mat.Matrix, st *forwardState) float64 {
	n, _ := X.Dims()
	if n == 0 {
		return 0
	}
	x := make([]float64, m.seqLength)
	var sse float64
	for i := 0; i < n; i++ {
		mat.Row(x, i, X)
		e := m.forward(x, st) - y.At(i, 0)
		sse += e * e
	}
	return sse / float64(n)
}
