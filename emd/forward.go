// Package emd — forward matching solver.
//
// Forward runs the batched auction: batch elements are fully independent
// and solve in parallel under a bounded errgroup; within one element,
// rounds are strictly sequential and each round is a three-phase barrier
// (bid → arbitrate → apply), which keeps the outcome reproducible for
// identical inputs and floating-point environment.
package emd

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pcmatch/pointcloud"
)

// Matcher runs auction matchings and retains the state one Backward call
// needs. A Matcher is NOT safe for concurrent use: Forward parallelises
// internally, but distinct goroutines must use distinct Matchers.
type Matcher struct {
	opts  Options
	saved *savedState
}

// savedState is the forward context retained for the backward pass,
// mirroring an autograd save-for-backward: inputs plus the assignment.
type savedState struct {
	xyz1, xyz2 pointcloud.Batch
	assignment [][]int
	n          int
}

// New returns a Matcher with the given options (nil means defaults).
// Option values are validated once here; Forward assumes them sane.
func New(opts *Options) (*Matcher, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Matcher{opts: o}, nil
}

// Match is the one-shot convenience wrapper: forward only, no gradient
// state retained.
func Match(xyz1, xyz2 pointcloud.Batch, opts *Options) (*Result, error) {
	m, err := New(opts)
	if err != nil {
		return nil, err
	}
	res, err := m.Forward(xyz1, xyz2)
	m.saved = nil
	return res, err
}

// Forward computes, per batch element, an approximate minimum-cost
// one-to-one assignment from xyz1 (A) onto xyz2 (B) and the per-A-point
// squared distances to the matched partners.
//
// Contract:
//   - shapes per validateShapes; violations return ErrInvalidShape or
//     ErrBatchTooLarge with no partial result;
//   - Result.Assignment[b][i] ∈ [0, N) or Unassigned; matched entries are
//     injective per element;
//   - Result.Unassigned[b] > 0 signals the round cap hit before full
//     convergence — informational, callers may still use the partial match;
//   - the inputs must not be mutated until Backward has been called (or the
//     Matcher discarded): Forward retains them for the gradient pass.
//
// Complexity: O(Iters · N²/CandidateScan) per element worst case, where the
// scan is N for full bidding or CandidateLimit with pruning; memory O(N)
// per element beyond inputs.
func (m *Matcher) Forward(xyz1, xyz2 pointcloud.Batch) (*Result, error) {
	n, err := validateShapes(xyz1, xyz2, m.opts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Dist:       make([][]float64, len(xyz1)),
		Assignment: make([][]int, len(xyz1)),
		Unassigned: make([]int, len(xyz1)),
	}

	var g errgroup.Group
	g.SetLimit(m.opts.workers())
	for b := range xyz1 {
		b := b
		g.Go(func() error {
			dist, assign, left := solveOne(xyz1[b], xyz2[b], m.opts)
			res.Dist[b], res.Assignment[b], res.Unassigned[b] = dist, assign, left
			return nil
		})
	}
	// Workers write disjoint slots and never fail; Wait is the barrier.
	_ = g.Wait()

	m.saved = &savedState{xyz1: xyz1, xyz2: xyz2, assignment: res.Assignment, n: n}
	return res, nil
}

// solveOne runs the auction for a single batch element. All per-call state
// (prices, assignments, bid buffers) is allocated fresh here and never
// escapes, so elements share nothing. Returns distances, assignment, and
// the count of A-points still unmatched at termination.
func solveOne(a, b pointcloud.Cloud, opts Options) (dist []float64, assign []int, left int) {
	n := len(a)

	price := make([]float64, n)
	assign = make([]int, n)
	assignInv := make([]int, n)
	for i := range assign {
		assign[i], assignInv[i] = Unassigned, Unassigned
	}

	// Optional kd-tree candidate pruning: each bidder only ever considers
	// its CandidateLimit nearest B-points. Built once per call.
	var cand [][]int
	if k := opts.CandidateLimit; k > 0 && k < n {
		tree := pointcloud.NewTree(b)
		cand = make([][]int, n)
		for i := range a {
			cand[i] = pointcloud.KNearest(tree, a[i], k)
		}
	}

	// Round-local buffers, reused across rounds.
	bidJ := make([]int, n)
	bidIncr := make([]float64, n)
	winner := make([]int, n)
	maxIncr := make([]float64, n)

	left = n
	for round := 0; round < opts.Iters && left > 0; round++ {
		// Phase 1 — bidding: every unassigned A-point picks its cheapest
		// B-point at current prices, in parallel blocks.
		collectBids(a, b, price, assign, cand, opts, bidJ, bidIncr)

		// Phase 2 — arbitration: one winner per contested B-point.
		// Ascending bidder order + strict improvement ⇒ lowest index wins ties.
		for j := range winner {
			winner[j] = Unassigned
		}
		for i := 0; i < n; i++ {
			j := bidJ[i]
			if j == Unassigned {
				continue
			}
			if winner[j] == Unassigned || bidIncr[i] > maxIncr[j] {
				winner[j], maxIncr[j] = i, bidIncr[i]
			}
		}

		// Phase 3 — apply: evict previous occupants, commit winners,
		// raise prices by the winning increments.
		for j := 0; j < n; j++ {
			i := winner[j]
			if i == Unassigned {
				continue
			}
			if prev := assignInv[j]; prev != Unassigned {
				assign[prev] = Unassigned
				left++
			}
			assign[i], assignInv[j] = j, i
			price[j] += maxIncr[j]
			left--
		}
	}

	// Unmatched entries keep the zero distance (documented sentinel policy,
	// matching the reference kernel's zero-initialised buffer).
	dist = make([]float64, n)
	for i, j := range assign {
		if j != Unassigned {
			dist[i] = pointcloud.SqDist(a[i], b[j])
		}
	}
	return dist, assign, left
}
