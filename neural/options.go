package neural

import (
	"gonum.org/v1/gonum/mat"

	"github.com/convforge/convcast/pkg/log"
)

// Option is a function that configures a Conv1DRegressor.
type Option func(*Conv1DRegressor)

// WithFilters sets the number of convolution filters.
func WithFilters(n int) Option {
	return func(m *Conv1DRegressor) {
		m.filters = n
	}
}

// WithKernelSize sets the convolution kernel size.
func WithKernelSize(k int) Option {
	return func(m *Conv1DRegressor) {
		m.kernelSize = k
	}
}

// WithPoolSize sets the max-pooling window size.
func WithPoolSize(p int) Option {
	return func(m *Conv1DRegressor) {
		m.poolSize = p
	}
}

// WithDenseUnits sets the width of the hidden dense layer.
func WithDenseUnits(n int) Option {
	return func(m *Conv1DRegressor) {
		m.denseUnits = n
	}
}

// WithActivation sets the activation used by the convolution and hidden dense
// layers. Defaults to ReLU.
func WithActivation(a Activation) Option {
	return func(m *Conv1DRegressor) {
		m.activation = a
	}
}

// WithLearningRate sets the Adam learning rate.
func WithLearningRate(lr float64) Option {
	return func(m *Conv1DRegressor) {
		m.learningRate = lr
	}
}

// WithEpochs sets the number of training epochs.
func WithEpochs(n int) Option {
	return func(m *Conv1DRegressor) {
		m.epochs = n
	}
}

// WithBatchSize sets the mini-batch size.
func WithBatchSize(n int) Option {
	return func(m *Conv1DRegressor) {
		m.batchSize = n
	}
}

// WithSeed sets the seed for weight initialization and batch shuffling.
// Training is deterministic for a fixed seed.
func WithSeed(seed uint64) Option {
	return func(m *Conv1DRegressor) {
		m.seed = seed
	}
}

// WithValidationData sets a held-out dataset whose loss is recorded after
// every epoch. The validation set is never used for weight updates.
func WithValidationData(X mat.Matrix, y mat.Matrix) Option {
	return func(m *Conv1DRegressor) {
		m.valX = X
		m.valY = y
	}
}

// WithLogger sets the logger used during training. Defaults to the
// process-wide logger from pkg/log.
func WithLogger(logger log.Logger) Option {
	return func(m *Conv1DRegressor) {
		m.logger = logger
	}
}
