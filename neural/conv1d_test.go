package neural

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/convforge/convcast/pkg/errors"
	"github.com/convforge/convcast/preprocessing"
	"github.com/convforge/convcast/timeseries"
)

// sineDataset builds windowed training data from a clean sine wave.
func sineDataset(t *testing.T, n, seqLength int) (*mat.Dense, *mat.VecDense) {
	t.Helper()
	series, err := timeseries.GenerateSine(n, timeseries.WithCycles(4))
	if err != nil {
		t.Fatal(err)
	}
	X, y, err := preprocessing.Window(series.Values(), seqLength)
	if err != nil {
		t.Fatal(err)
	}
	return X, y
}

func TestConv1DRegressorFit(t *testing.T) {
	X, y := sineDataset(t, 200, 10)

	m := NewConv1DRegressor(10,
		WithFilters(8),
		WithDenseUnits(16),
		WithEpochs(30),
		WithBatchSize(16),
		WithLearningRate(0.01),
		WithSeed(7),
	)
	if err := m.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if !m.IsFitted() {
		t.Error("model not marked fitted")
	}

	h := m.History()
	if len(h.TrainLoss) != 30 {
		t.Fatalf("history has %d epochs, want 30", len(h.TrainLoss))
	}
	first, last := h.TrainLoss[0], h.TrainLoss[len(h.TrainLoss)-1]
	if !(last < first) {
		t.Errorf("training loss did not improve: first %v, last %v", first, last)
	}
	if len(h.ValLoss) != 0 {
		t.Errorf("unexpected validation history without validation data: %d entries", len(h.ValLoss))
	}
}

func TestConv1DRegressorTanh(t *testing.T) {
	X, y := sineDataset(t, 200, 10)

	m := NewConv1DRegressor(10,
		WithFilters(8),
		WithDenseUnits(16),
		WithActivation(Tanh),
		WithEpochs(20),
		WithLearningRate(0.01),
	)
	if err := m.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	h := m.History()
	first, last := h.TrainLoss[0], h.TrainLoss[len(h.TrainLoss)-1]
	if !(last < first) {
		t.Errorf("tanh training loss did not improve: first %v, last %v", first, last)
	}
}

func TestActivationString(t *testing.T) {
	if ReLU.String() != "relu" || Tanh.String() != "tanh" {
		t.Errorf("unexpected names: %s, %s", ReLU, Tanh)
	}
}

func TestConv1DRegressorValidationHistory(t *testing.T) {
	X, y := sineDataset(t, 200, 10)
	XVal, yVal := sineDataset(t, 80, 10)

	m := NewConv1DRegressor(10,
		WithFilters(4),
		WithDenseUnits(8),
		WithEpochs(5),
		WithValidationData(XVal, yVal),
	)
	if err := m.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	h := m.History()
	if len(h.ValLoss) != 5 {
		t.Fatalf("validation history has %d epochs, want 5", len(h.ValLoss))
	}
	for i, v := range h.ValLoss {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("validation loss at epoch %d is %v", i, v)
		}
	}
}

func TestConv1DRegressorPredict(t *testing.T) {
	X, y := sineDataset(t, 200, 10)

	m := NewConv1DRegressor(10,
		WithFilters(8),
		WithDenseUnits(16),
		WithEpochs(20),
		WithLearningRate(0.01),
	)
	if err := m.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	pred, err := m.Predict(X)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	r, c := pred.Dims()
	rows, _ := X.Dims()
	if r != rows || c != 1 {
		t.Errorf("prediction dims = %d×%d, want %d×1", r, c, rows)
	}
	for i := 0; i < r; i++ {
		if math.IsNaN(pred.At(i, 0)) {
			t.Fatalf("prediction %d is NaN", i)
		}
	}

	score, err := m.Score(X, y)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score > 1 || math.IsNaN(score) {
		t.Errorf("R² = %v out of range", score)
	}
}

func TestConv1DRegressorDeterministic(t *testing.T) {
	X, y := sineDataset(t, 150, 10)

	train := func() mat.Matrix {
		m := NewConv1DRegressor(10,
			WithFilters(4),
			WithDenseUnits(8),
			WithEpochs(5),
			WithSeed(11),
		)
		if err := m.Fit(X, y); err != nil {
			t.Fatalf("Fit failed: %v", err)
		}
		pred, err := m.Predict(X)
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		return pred
	}

	a := train()
	b := train()
	if !mat.Equal(a, b) {
		t.Error("same seed produced different models")
	}
}

func TestConv1DRegressorNotFitted(t *testing.T) {
	m := NewConv1DRegressor(10)
	X := mat.NewDense(3, 10, nil)

	_, err := m.Predict(X)
	if err == nil {
		t.Fatal("Predict before Fit succeeded")
	}
	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Errorf("error is not a *NotFittedError: %v", err)
	}

	if _, err := m.Score(X, mat.NewDense(3, 1, nil)); err == nil {
		t.Error("Score before Fit succeeded")
	}
}

func TestConv1DRegressorDimensionChecks(t *testing.T) {
	X, y := sineDataset(t, 100, 10)

	m := NewConv1DRegressor(10, WithFilters(4), WithDenseUnits(8), WithEpochs(2))
	if err := m.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	wrong := mat.NewDense(5, 7, nil)
	_, err := m.Predict(wrong)
	if err == nil {
		t.Fatal("Predict with wrong window length succeeded")
	}
	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Errorf("error is not a *DimensionError: %v", err)
	}

	// Fit with mismatched y rows
	m2 := NewConv1DRegressor(10, WithEpochs(1))
	badY := mat.NewDense(3, 1, nil)
	if err := m2.Fit(X, badY); err == nil {
		t.Error("Fit with mismatched y accepted")
	}
}

func TestConv1DRegressorInvalidConfig(t *testing.T) {
	X, y := sineDataset(t, 50, 10)

	tests := []struct {
		name string
		opts []Option
	}{
		{"zero filters", []Option{WithFilters(0)}},
		{"kernel larger than window", []Option{WithKernelSize(11)}},
		{"zero pool", []Option{WithPoolSize(0)}},
		{"pool swallows output", []Option{WithKernelSize(10), WithPoolSize(2)}},
		{"unknown activation", []Option{WithActivation(Activation(9))}},
		{"zero epochs", []Option{WithEpochs(0)}},
		{"negative learning rate", []Option{WithLearningRate(-0.1)}},
		{"zero batch", []Option{WithBatchSize(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConv1DRegressor(10, tt.opts...)
			err := m.Fit(X, y)
			if err == nil {
				t.Fatal("invalid configuration accepted")
			}
			var ve *errors.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error is not a *ValidationError: %v", err)
			}
		})
	}
}
