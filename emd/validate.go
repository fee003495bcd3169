// Package emd — input validation shared by Forward and the one-shot Match.
//
// All precondition failures are fatal to the call and are detected here,
// before any per-round state is allocated. Only sentinel errors from
// types.go are returned; no logging, no panics on user input.
package emd

import "github.com/katalvlaran/pcmatch/pointcloud"

// validateShapes verifies the (batch, N, 3) contract:
//   - equal batch dimension between the two inputs, 1 <= batch <= MaxBatch;
//   - equal N between the two clouds of every element;
//   - N uniform across the batch, N >= 1, N % BlockSize == 0.
//
// It returns N on success.
//
// Complexity: O(batch) time, O(1) space.
func validateShapes(xyz1, xyz2 pointcloud.Batch, opts Options) (int, error) {
	if len(xyz1) != len(xyz2) || len(xyz1) == 0 {
		return 0, ErrInvalidShape
	}
	if len(xyz1) > opts.MaxBatch {
		return 0, ErrBatchTooLarge
	}
	n := len(xyz1[0])
	if n == 0 || n%opts.BlockSize != 0 {
		return 0, ErrInvalidShape
	}
	for b := range xyz1 {
		if len(xyz1[b]) != n || len(xyz2[b]) != n {
			return 0, ErrInvalidShape
		}
	}
	return n, nil
}

// validateGrad verifies that gradDist matches the saved forward output
// shape (batch × N).
//
// Complexity: O(batch).
func validateGrad(gradDist [][]float64, batch, n int) error {
	if len(gradDist) != batch {
		return ErrInvalidShape
	}
	for b := range gradDist {
		if len(gradDist[b]) != n {
			return ErrInvalidShape
		}
	}
	return nil
}
