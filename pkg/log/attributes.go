package log

// Standard attribute keys for model and operation context. Using these keys
// consistently keeps logs filterable across packages.
const (
	// ModelNameKey identifies the estimator type, e.g. "Conv1DRegressor".
	ModelNameKey = "model.name"

	// OperationKey names the operation: "fit", "predict", "transform", "score".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation,
	// e.g. "neural", "preprocessing", "timeseries".
	ComponentKey = "ml.component"
)

// Attribute keys describing data shape.
const (
	// SamplesKey is the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// WindowLengthKey is the sliding-window length used to form inputs.
	WindowLengthKey = "data.window_length"

	// SeriesLengthKey is the length of the source series.
	SeriesLengthKey = "data.series_length"

	// BatchSizeKey is the mini-batch size during training.
	BatchSizeKey = "data.batch_size"
)

// Attribute keys for training progress.
const (
	// EpochKey is the current training epoch (zero-based).
	EpochKey = "train.epoch"

	// LossKey is the training loss for the epoch.
	LossKey = "train.loss"

	// ValLossKey is the validation loss for the epoch, when a validation
	// set is configured.
	ValLossKey = "train.val_loss"

	// DurationKey is the wall-clock duration of an operation.
	DurationKey = "op.duration"
)
