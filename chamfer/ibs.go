// Package chamfer — IBS (interaction bisector surface) sphere-offset loss.
//
// Given candidate spheres (center, radius) and a surface point cloud, each
// sphere is charged how far its radius misses the distance to the nearest
// surface point. A sphere tangent to the surface contributes zero.
package chamfer

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pcmatch/pointcloud"
)

// IBSLoss returns mean over spheres k of | ‖nearest(pcd, cₖ)−cₖ‖ − rₖ |.
//
// Contract: len(radii) == len(centers) (else ErrShapeMismatch); both
// centers and pcd must be non-empty (else ErrEmptyCloud). Negative radii
// are accepted and behave like their magnitude pulled inside the surface;
// callers wanting strict validation should reject them upstream.
//
// Complexity: O((k+n)·log n) with the kd-tree path.
func IBSLoss(centers pointcloud.Cloud, radii []float64, pcd pointcloud.Cloud) (float64, error) {
	if len(centers) == 0 || len(pcd) == 0 {
		return 0, ErrEmptyCloud
	}
	if len(radii) != len(centers) {
		return 0, ErrShapeMismatch
	}

	sq, _ := nearestAll(centers, pcd)
	miss := make([]float64, len(centers))
	for k := range centers {
		miss[k] = math.Abs(math.Sqrt(sq[k]) - radii[k])
	}
	return stat.Mean(miss, nil), nil
}
