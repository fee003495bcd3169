// Package emd — configuration for the auction matcher.
//
// Plain options struct with documented defaults. Defaults reproduce the
// reference workload (Eps=0.005, Iters=50, BlockSize=1024, MaxBatch=512);
// none of them is a hard architectural limit here.
package emd

import (
	"fmt"
	"runtime"
)

// Documented defaults (single source of truth).
const (
	// DefaultEps is the auction relaxation coefficient: the minimum price
	// increment per winning bid. Higher values converge faster at the cost
	// of assignment quality.
	DefaultEps = 0.005

	// DefaultIters caps the number of auction rounds per Forward call.
	DefaultIters = 50

	// DefaultBlockSize partitions each element's A-points into blocks for
	// parallel bidding. N must be a multiple of it.
	DefaultBlockSize = 1024

	// DefaultMaxBatch bounds the batch dimension per Forward call.
	DefaultMaxBatch = 512
)

// Options configures a Matcher.
//
// Fields:
//   - Eps            — relaxation coefficient, must be > 0 (quality↔speed knob).
//   - Iters          — maximum auction rounds, must be >= 1.
//   - BlockSize      — A-point block size for parallel bidding, must be >= 1;
//     Forward requires N % BlockSize == 0.
//   - MaxBatch       — maximum batch size accepted by Forward, must be >= 1.
//   - CandidateLimit — if > 0, each bidder only considers its CandidateLimit
//     nearest B-points (kd-tree, built once per call per element) instead of
//     scanning all of B. 0 means full scan. Pruned bidding can leave more
//     points unmatched at the round cap; use it for large N where the full
//     scan dominates.
//   - Workers        — bound on concurrent batch elements; <= 0 means
//     runtime.NumCPU().
//   - GradSecond     — if true, Backward also accumulates gradients for the
//     second cloud; off by default, mirroring the usual prediction-vs-ground-
//     truth training setup where only the prediction needs a gradient.
type Options struct {
	Eps            float64
	Iters          int
	BlockSize      int
	MaxBatch       int
	CandidateLimit int
	Workers        int
	GradSecond     bool
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		Eps:       DefaultEps,
		Iters:     DefaultIters,
		BlockSize: DefaultBlockSize,
		MaxBatch:  DefaultMaxBatch,
	}
}

// validate checks internal consistency of Options without referencing any
// input clouds.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.Eps <= 0 {
		return fmt.Errorf("%w: Eps must be > 0, got %g", ErrBadOptions, o.Eps)
	}
	if o.Iters < 1 {
		return fmt.Errorf("%w: Iters must be >= 1, got %d", ErrBadOptions, o.Iters)
	}
	if o.BlockSize < 1 {
		return fmt.Errorf("%w: BlockSize must be >= 1, got %d", ErrBadOptions, o.BlockSize)
	}
	if o.MaxBatch < 1 {
		return fmt.Errorf("%w: MaxBatch must be >= 1, got %d", ErrBadOptions, o.MaxBatch)
	}
	if o.CandidateLimit < 0 {
		return fmt.Errorf("%w: CandidateLimit must be >= 0, got %d", ErrBadOptions, o.CandidateLimit)
	}
	return nil
}

// workers resolves the effective worker bound.
func (o Options) workers() int {
	if o.Workers < 1 {
		return runtime.NumCPU()
	}
	return o.Workers
}
