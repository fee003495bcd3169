// Package emd — bidding phase of the auction round.
//
// collectBids is the parallel half of a round: blocks of A-points compute
// their bids independently into disjoint slots of the shared bid buffers,
// and the errgroup Wait is the round barrier. Prices and assignments are
// only read here; all mutation happens in the sequential apply phase.
package emd

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pcmatch/pointcloud"
)

// collectBids fills bidJ/bidIncr for every currently-unassigned A-point;
// assigned points get bidJ = Unassigned. cand may be nil (full scan of B).
//
// Complexity: O(N · scan / P) wall-clock with P parallel blocks, where
// scan = len(B) or CandidateLimit.
func collectBids(a, b pointcloud.Cloud, price []float64, assign []int, cand [][]int, opts Options, bidJ []int, bidIncr []float64) {
	n := len(a)
	var g errgroup.Group
	for lo := 0; lo < n; lo += opts.BlockSize {
		lo := lo
		hi := min(lo+opts.BlockSize, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if assign[i] != Unassigned {
					bidJ[i] = Unassigned
					continue
				}
				if cand != nil {
					bidJ[i], bidIncr[i] = bestBid(a[i], b, price, cand[i], opts.Eps)
				} else {
					bidJ[i], bidIncr[i] = bestBidFull(a[i], b, price, opts.Eps)
				}
			}
			return nil
		})
	}
	_ = g.Wait() // block workers never fail; Wait is the round barrier
}

// bestBidFull scans all of B for the cheapest and second-cheapest
// price-adjusted costs and returns the target plus the auction increment
// (gap + eps). The inner loop is the hot path of the whole solver.
func bestBidFull(p pointcloud.Point, b pointcloud.Cloud, price []float64, eps float64) (int, float64) {
	best, second := math.Inf(1), math.Inf(1)
	bestJ := Unassigned
	for j := range b {
		v := pointcloud.SqDist(p, b[j]) + price[j]
		if v < best {
			second, best, bestJ = best, v, j
		} else if v < second {
			second = v
		}
	}
	return bestJ, increment(best, second, eps)
}

// bestBid is the candidate-pruned variant of bestBidFull: only the given
// B-indices are considered.
func bestBid(p pointcloud.Point, b pointcloud.Cloud, price []float64, cand []int, eps float64) (int, float64) {
	best, second := math.Inf(1), math.Inf(1)
	bestJ := Unassigned
	for _, j := range cand {
		v := pointcloud.SqDist(p, b[j]) + price[j]
		if v < best {
			second, best, bestJ = best, v, j
		} else if v < second {
			second = v
		}
	}
	return bestJ, increment(best, second, eps)
}

// increment applies the standard auction bid rule. With a single candidate
// there is no second-best gap; the bid is then the bare eps, which still
// guarantees forward progress.
func increment(best, second, eps float64) float64 {
	if math.IsInf(second, 1) {
		return eps
	}
	return second - best + eps
}
