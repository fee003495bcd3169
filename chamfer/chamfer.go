// Package chamfer — symmetric nearest-neighbour distances and the scalar
// losses built on them.
//
// Distance is the workhorse: both directions of per-point squared
// distances plus the matched indices. The losses reduce those vectors the
// way the completion-training literature does (L1: mean of (root) distances,
// averaged over both directions; L2: sum of the two mean squared distances).
package chamfer

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pcmatch/pointcloud"
)

// Distance returns, for each point of a, the squared Euclidean distance to
// its nearest point in b along with that point's index (d1, i1), and
// symmetrically for b against a (d2, i2). The clouds may differ in size.
//
// Complexity: O((n+m)·log) with kd-trees, O(n·m) below the brute-force
// crossover.
func Distance(a, b pointcloud.Cloud) (d1, d2 []float64, i1, i2 []int, err error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, nil, nil, ErrEmptyCloud
	}
	d1, i1 = nearestAll(a, b)
	d2, i2 = nearestAll(b, a)
	return d1, d2, i1, i2, nil
}

// BatchDistance is the batched variant of Distance: element b of every
// output corresponds to Distance(a[b], t[b]). Elements run in parallel.
func BatchDistance(a, t pointcloud.Batch) (d1, d2 [][]float64, i1, i2 [][]int, err error) {
	if len(a) != len(t) {
		return nil, nil, nil, nil, ErrShapeMismatch
	}
	for b := range a {
		if len(a[b]) == 0 || len(t[b]) == 0 {
			return nil, nil, nil, nil, ErrEmptyCloud
		}
	}

	d1 = make([][]float64, len(a))
	d2 = make([][]float64, len(a))
	i1 = make([][]int, len(a))
	i2 = make([][]int, len(a))
	var g errgroup.Group
	for b := range a {
		b := b
		g.Go(func() error {
			d1[b], i1[b] = nearestAll(a[b], t[b])
			d2[b], i2[b] = nearestAll(t[b], a[b])
			return nil
		})
	}
	_ = g.Wait() // disjoint slots, no error path
	return d1, d2, i1, i2, nil
}

// LossL1 returns the L1 Chamfer loss:
// (mean ‖a−nn(a,b)‖ + mean ‖b−nn(b,a)‖) / 2.
func LossL1(a, b pointcloud.Cloud) (float64, error) {
	d1, d2, _, _, err := Distance(a, b)
	if err != nil {
		return 0, err
	}
	for i := range d1 {
		d1[i] = math.Sqrt(d1[i])
	}
	for i := range d2 {
		d2[i] = math.Sqrt(d2[i])
	}
	return (stat.Mean(d1, nil) + stat.Mean(d2, nil)) / 2, nil
}

// LossL2 returns the L2 Chamfer loss:
// mean ‖a−nn(a,b)‖² + mean ‖b−nn(b,a)‖².
func LossL2(a, b pointcloud.Cloud) (float64, error) {
	d1, d2, _, _, err := Distance(a, b)
	if err != nil {
		return 0, err
	}
	return stat.Mean(d1, nil) + stat.Mean(d2, nil), nil
}

// nearestAll maps every point of from onto its nearest neighbour in to.
// A kd-tree pays off only past a crossover size of the target cloud.
func nearestAll(from, to pointcloud.Cloud) ([]float64, []int) {
	d := make([]float64, len(from))
	idx := make([]int, len(from))
	if len(to) <= bruteForceCutoff {
		for i, p := range from {
			d[i], idx[i] = nearestBrute(p, to)
		}
		return d, idx
	}
	tree := pointcloud.NewTree(to)
	for i, p := range from {
		id, sq := pointcloud.Nearest(tree, p)
		d[i], idx[i] = sq, id
	}
	return d, idx
}

// nearestBrute is the linear-scan fallback. Lowest index wins ties.
func nearestBrute(p pointcloud.Point, to pointcloud.Cloud) (float64, int) {
	best, bestJ := math.Inf(1), -1
	for j := range to {
		if sq := pointcloud.SqDist(p, to[j]); sq < best {
			best, bestJ = sq, j
		}
	}
	return best, bestJ
}
