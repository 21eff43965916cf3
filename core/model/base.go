// Package model provides the shared estimator interfaces and fitted-state
// tracking used by all ConvCast models and transformers.
package model

// EstimatorState represents the training state of a model.
type EstimatorState int

const (
	// NotFitted means the model has not been trained yet.
	NotFitted EstimatorState = iota
	// Fitted means the model has been trained.
	Fitted
)

// BaseEstimator is embedded by every model to track its training state.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the model has been trained.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the model as trained.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the model to the untrained state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
