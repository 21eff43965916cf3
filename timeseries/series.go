// Package timeseries provides the Series type, synthetic series generators,
// and temporal train/test splitting.
package timeseries

import (
	"gonum.org/v1/gonum/stat"

	"github.com/convforge/convcast/pkg/errors"
)

// Series is an ordered sequence of real-valued observations, indexed by
// position with no gaps and implicitly equal spacing in time. A Series is
// immutable once created; accessors return copies.
type Series struct {
	values []float64
}

// New creates a Series from values. The slice is copied.
func New(values []float64) *Series {
	v := make([]float64, len(values))
	copy(v, values)
	return &Series{values: v}
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.values)
}

// Values returns a copy of the observations in order.
func (s *Series) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}

// At returns the observation at position i.
func (s *Series) At(i int) float64 {
	return s.values[i]
}

// Mean returns the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return stat.Mean(s.values, nil)
}

// Std returns the sample standard deviation of the series.
func (s *Series) Std() float64 {
	if len(s.values) < 2 {
		return 0
	}
	return stat.StdDev(s.values, nil)
}

// Clone returns an independent copy of the series.
func (s *Series) Clone() *Series {
	return New(s.values)
}

// Split partitions the series into a train prefix and a test suffix by
// fraction, preserving temporal order. No shuffling takes place: the train
// segment ends exactly where the test segment begins, and concatenating the
// two reconstructs the original series.
//
// trainFrac must lie strictly between 0 and 1, and both partitions must be
// non-empty.
func (s *Series) Split(trainFrac float64) (train, test *Series, err error) {
	if trainFrac <= 0 || trainFrac >= 1 {
		return nil, nil, errors.NewValidationError("train_frac", "must be in (0, 1)", trainFrac)
	}
	n := len(s.values)
	trainSize := int(float64(n) * trainFrac)
	if trainSize == 0 || trainSize == n {
		return nil, nil, errors.NewValidationError("train_frac", "produces an empty partition", trainFrac)
	}
	return New(s.values[:trainSize]), New(s.values[trainSize:]), nil
}
