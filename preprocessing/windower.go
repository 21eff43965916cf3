// Package preprocessing provides data transforms that turn raw series into
// model-ready supervised datasets.
package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/convforge/convcast/pkg/errors"
)

// Window slides a window of seqLength over series one position at a time and
// returns the supervised pairs for next-step prediction: row i of X is
// series[i : i+seqLength] and element i of y is series[i+seqLength].
//
// For a series of length n it produces exactly n-seqLength pairs, in
// increasing index order. The output is copied from the series; mutating the
// input afterwards does not affect it. Window is a pure function: the same
// inputs always produce the same dataset.
//
// A *ValidationError is returned when seqLength <= 0 or seqLength >= n, since
// no pair could be formed.
//
// Split data must be windowed per partition, after splitting, so that no
// window straddles the train/test boundary.
func Window(series []float64, seqLength int) (*mat.Dense, *mat.VecDense, error) {
	n := len(series)
	if seqLength <= 0 {
		return nil, nil, errors.NewValidationError("seq_length", "must be positive", seqLength)
	}
	if seqLength >= n {
		return nil, nil, errors.NewValidationError("seq_length",
			"must be smaller than the series length", seqLength)
	}

	pairs := n - seqLength
	X := mat.NewDense(pairs, seqLength, nil)
	y := mat.NewVecDense(pairs, nil)
	for i := 0; i < pairs; i++ {
		X.SetRow(i, series[i:i+seqLength])
		y.SetVec(i, series[i+seqLength])
	}
	return X, y, nil
}

// SequenceWindower is the transformer form of Window, for use where a
// model.Transformer is expected.
type SequenceWindower struct {
	// SeqLength is the window length. It must be positive and smaller than
	// any series passed to Transform.
	SeqLength int
}

// NewSequenceWindower creates a SequenceWindower with the given window length.
func NewSequenceWindower(seqLength int) *SequenceWindower {
	return &SequenceWindower{SeqLength: seqLength}
}

// Transform applies Window with the configured length.
func (w *SequenceWindower) Transform(series []float64) (*mat.Dense, *mat.VecDense, error) {
	return Window(series, w.SeqLength)
}
