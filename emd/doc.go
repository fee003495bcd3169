// Package emd computes approximate Earth-Mover-Distance (EMD) matchings
// between batches of equal-size 3-D point clouds, with straight-through
// gradients for training use.
//
// 🚀 What is approximate EMD?
//
//	EMD measures the cheapest way to transport one point set onto another.
//	Exact optimal transport is cubic; the auction algorithm trades a small,
//	controllable amount of optimality for near-linear rounds:
//	  • every unassigned A-point bids for its cheapest B-point
//	  • the bid raises that B-point's price by (second-best − best) + Eps
//	  • the highest bid per B-point wins, evicting the previous occupant
//	  • rising prices push later bidders toward unclaimed points
//	It is the standard training loss for point-cloud completion networks.
//
// ✨ Key features:
//   - batched: every batch element solves independently across a bounded
//     worker pool (golang.org/x/sync/errgroup)
//   - deterministic: bids are collected per round, then arbitrated in a
//     single barrier step — highest increment wins, lowest A-index on ties
//   - configurable: Eps (quality↔speed knob), Iters (round cap), BlockSize
//     and MaxBatch (reference values 1024/512 are defaults, not limits),
//     CandidateLimit (kd-tree pruned bidding)
//   - differentiable: Backward produces coordinate gradients holding the
//     discrete assignment fixed (deliberate stop-gradient, see below)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pcmatch/emd"
//
//	opts := emd.DefaultOptions() // Eps=0.005, Iters=50
//	m, err := emd.New(&opts)
//	res, err := m.Forward(pred, target)      // dist + assignment per element
//	loss := res.MeanDist()                   // scalar training loss
//	g1, _, err := m.Backward(gradOfLoss)     // ∂loss/∂pred coordinates
//
// Convergence:
//
//	Termination is bounded by Iters; a perfect bijection is NOT guaranteed.
//	Result.Unassigned reports the leftover count per batch element — an
//	informational signal, not an error. Unmatched points carry assignment
//	Unassigned (−1), distance 0, and zero gradient.
//
// Stop-gradient:
//
//	Backward treats the assignment as a constant. The matching step is
//	combinatorial; differentiating through it is intentionally skipped,
//	matching accepted usage of auction-based EMD as a training signal.
//
// Errors: ErrInvalidShape, ErrBatchTooLarge, ErrMissingState, ErrBadOptions.
// All precondition checks run before any per-round state is allocated.
package emd
