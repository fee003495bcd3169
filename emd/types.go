package emd

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Unassigned is the sentinel value used in assignment slices (and in the
// internal inverse assignment) for points without a partner.
const Unassigned = -1

// ErrInvalidShape is returned when the two batches disagree in size, a
// batch element's clouds differ in length, N varies across the batch,
// N == 0, or N is not a multiple of Options.BlockSize. Also returned by
// Backward when gradDist does not match the forward output's shape.
var ErrInvalidShape = errors.New("emd: invalid input shape")

// ErrBatchTooLarge is returned when the batch exceeds Options.MaxBatch.
var ErrBatchTooLarge = errors.New("emd: batch exceeds configured maximum")

// ErrMissingState is returned by Backward when no forward state is saved
// (no Forward call yet, or the state was already consumed by a Backward).
var ErrMissingState = errors.New("emd: backward without a prior forward")

// ErrBadOptions is returned by New for out-of-range option values.
var ErrBadOptions = errors.New("emd: bad options")

// Result holds the outcome of one Forward call.
type Result struct {
	// Dist[b][i] is the squared Euclidean distance from xyz1[b][i] to its
	// assigned partner, or 0 when the point ended the call unmatched.
	Dist [][]float64

	// Assignment[b][i] is the index into xyz2[b] that xyz1[b][i] was
	// matched to, or Unassigned. Matched entries are injective per batch
	// element: no two A-points share a B-point.
	Assignment [][]int

	// Unassigned[b] counts A-points of batch element b still unmatched
	// when the round cap was reached. All zeros means full convergence.
	Unassigned []int
}

// TotalCost returns the total transport cost: the sum of Dist over every
// point of every batch element.
func (r *Result) TotalCost() float64 {
	var total float64
	for _, row := range r.Dist {
		total += floats.Sum(row)
	}
	return total
}

// MeanDist returns the mean per-point distance over the whole batch — the
// usual scalar EMD training loss.
func (r *Result) MeanDist() float64 {
	var count int
	for _, row := range r.Dist {
		count += len(row)
	}
	if count == 0 {
		return 0
	}
	return r.TotalCost() / float64(count)
}

// UnassignedCount returns the total number of unmatched A-points across
// the batch. Zero means the auction converged to a full bijection.
func (r *Result) UnassignedCount() int {
	var total int
	for _, u := range r.Unassigned {
		total += u
	}
	return total
}
