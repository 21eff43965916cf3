package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on X (n_samples × n_features) and y (n_samples × 1).
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that produce predictions.
type Predictor interface {
	// Predict returns predictions for X as an n_samples × 1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can evaluate themselves.
type Scorer interface {
	// Score returns the coefficient of determination R² of the prediction.
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor combines the interfaces implemented by regression models.
type Regressor interface {
	Fitter
	Predictor
	Scorer
}

// Transformer is the interface for supervised data transforms that map a
// raw series matrix into model-ready inputs and targets.
type Transformer interface {
	// Transform converts input data, returning the transformed inputs and
	// their associated targets.
	Transform(series []float64) (X *mat.Dense, y *mat.VecDense, err error)
}
