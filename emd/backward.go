// Package emd — backward gradient solver.
//
// Backward chains the incoming per-point distance gradients through the
// squared Euclidean distance to coordinate gradients, treating the saved
// assignment as a constant (stop-gradient through the combinatorial
// matching step — a deliberate property of auction-based EMD, not an
// approximation to be "fixed").
package emd

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pcmatch/pointcloud"
)

// Backward returns ∂loss/∂xyz1 (and, when Options.GradSecond is set,
// ∂loss/∂xyz2; otherwise grad2 is nil) for the most recent Forward call,
// given gradDist = ∂loss/∂Dist of that call.
//
// Contract:
//   - requires the saved state of exactly one prior Forward; the state is
//     consumed, so a second Backward returns ErrMissingState;
//   - gradDist must be batch × N as produced by that Forward, else
//     ErrInvalidShape (state is kept untouched on shape failure);
//   - matched pair (i, j): grad1[b][i] = gradDist[b][i] · 2·(xyz1−xyz2),
//     grad2[b][j] accumulates the negation; unmatched points get zero.
//
// Complexity: O(batch · N) time, O(batch · N) output space.
func (m *Matcher) Backward(gradDist [][]float64) (grad1, grad2 pointcloud.Batch, err error) {
	s := m.saved
	if s == nil {
		return nil, nil, ErrMissingState
	}
	if err = validateGrad(gradDist, len(s.xyz1), s.n); err != nil {
		return nil, nil, err
	}
	m.saved = nil // one backward per forward

	grad1 = make(pointcloud.Batch, len(s.xyz1))
	if m.opts.GradSecond {
		grad2 = make(pointcloud.Batch, len(s.xyz1))
	}

	var g errgroup.Group
	g.SetLimit(m.opts.workers())
	for b := range s.xyz1 {
		b := b
		g.Go(func() error {
			g1 := make(pointcloud.Cloud, s.n)
			var g2 pointcloud.Cloud
			if grad2 != nil {
				g2 = make(pointcloud.Cloud, s.n)
			}
			for i, j := range s.assignment[b] {
				if j == Unassigned {
					continue
				}
				// d/dx ‖x−y‖² = 2(x−y), routed through the fixed match.
				gp := pointcloud.Scale(pointcloud.Sub(s.xyz1[b][i], s.xyz2[b][j]), 2*gradDist[b][i])
				g1[i] = gp
				if g2 != nil {
					g2[j] = pointcloud.Sub(g2[j], gp)
				}
			}
			grad1[b] = g1
			if grad2 != nil {
				grad2[b] = g2
			}
			return nil
		})
	}
	_ = g.Wait()
	return grad1, grad2, nil
}
