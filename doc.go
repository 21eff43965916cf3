// Package convcast provides convolutional neural network forecasting for
// univariate time series in Go.
//
// ConvCast offers a scikit-learn-like API: estimators expose Fit and Predict
// over gonum matrices, preprocessing transforms are pure and independently
// testable, and evaluation metrics work on plain vectors. The library covers
// the full path from a raw ordered series to a next-step forecast:
//
//   - timeseries: the Series type, synthetic generators, and temporal
//     train/test splitting (no shuffling, order preserved)
//   - preprocessing: sliding-window transformation of a series into
//     supervised (window, target) pairs for next-step prediction
//   - neural: a 1-D convolutional regression network
//     (Conv1D -> MaxPool -> Dense) trained with Adam on MSE loss
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//   - plot: rendering of true vs. predicted sequences via gonum/plot
//   - core/model: shared estimator interfaces and fitted-state tracking
//
// # Quick Start
//
// Forecast a noisy sine wave one step ahead:
//
//	series, _ := timeseries.GenerateSine(500, timeseries.WithNoise(0.1), timeseries.WithSeed(42))
//	train, test, _ := series.Split(0.8)
//
//	XTrain, yTrain, _ := preprocessing.Window(train.Values(), 10)
//	XTest, yTest, _ := preprocessing.Window(test.Values(), 10)
//
//	model := neural.NewConv1DRegressor(10,
//	    neural.WithFilters(64),
//	    neural.WithEpochs(20),
//	    neural.WithValidationData(XTest, yTest),
//	)
//	if err := model.Fit(XTrain, yTrain); err != nil {
//	    log.Fatal(err)
//	}
//	pred, _ := model.Predict(XTest)
//	mse, _ := metrics.MSEMatrix(yTest, pred)
//
// See examples/sine_forecast for the complete program, including plotting.
//
// # Design
//
// Windowing is deliberately decoupled from model configuration and from
// plotting: it is a pure function of (series, window length) with a precise
// contract, so it can be unit-tested without any network in play. Each split
// partition is windowed independently; windows never straddle the train/test
// boundary.
//
// Errors are structured (pkg/errors) and carry stack traces; predicting with
// an unfitted model, shape mismatches, and invalid window lengths each have a
// distinct error type that callers can match with errors.As.
package convcast
