package emd_test

import (
	"fmt"

	"github.com/katalvlaran/pcmatch/emd"
	"github.com/katalvlaran/pcmatch/pointcloud"
)

// ExampleMatch demonstrates the one-shot forward pass: matching a cloud
// against itself converges to the identity with zero transport cost.
func ExampleMatch() {
	cloud, _ := pointcloud.UnitCubeGrid(8) // 512 points

	opts := emd.DefaultOptions()
	opts.BlockSize = 512
	res, _ := emd.Match(pointcloud.Batch{cloud}, pointcloud.Batch{cloud}, &opts)

	fmt.Printf("total=%.6f unmatched=%d first=%d\n",
		res.TotalCost(), res.UnassignedCount(), res.Assignment[0][0])
	// Output: total=0.000000 unmatched=0 first=0
}

// ExampleMatcher_Backward demonstrates the training-loop shape: forward,
// scalar loss, gradients for the first cloud with the match held fixed.
func ExampleMatcher_Backward() {
	target, _ := pointcloud.UnitCubeGrid(8)
	pred := pointcloud.Jitter(target, 0.001, 42) // a slightly-off prediction

	opts := emd.DefaultOptions()
	opts.BlockSize = 512
	m, _ := emd.New(&opts)

	res, _ := m.Forward(pointcloud.Batch{pred}, pointcloud.Batch{target})

	// ∂(mean dist)/∂dist_i = 1/N for every point.
	gradDist := [][]float64{make([]float64, len(pred))}
	for i := range gradDist[0] {
		gradDist[0][i] = 1 / float64(len(pred))
	}
	grad, _, _ := m.Backward(gradDist)

	fmt.Printf("converged=%v gradients=%d\n", res.UnassignedCount() == 0, len(grad[0]))
	// Output: converged=true gradients=512
}
