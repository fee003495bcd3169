// Package chamfer — analytic gradients for the squared-distance vectors.
//
// Grad mirrors emd.Backward's stop-gradient treatment: the argmin indices
// from Distance are held constant, and only the squared Euclidean distance
// is differentiated. Gradients of the L1/L2 scalar losses are obtained by
// feeding the appropriate gd1/gd2 (e.g., 1/n for a plain mean of squared
// distances).
package chamfer

import "github.com/katalvlaran/pcmatch/pointcloud"

// Grad returns ∂loss/∂a and ∂loss/∂b given the matched indices (i1, i2)
// from Distance and the incoming gradients gd1 = ∂loss/∂d1, gd2 = ∂loss/∂d2.
//
// Either direction may be skipped by passing nil for BOTH its index and
// gradient slice; the corresponding contributions are then omitted (the
// outputs still cover both clouds, since each direction touches both).
//
// Contract:
//   - len(i1) == len(gd1) == len(a) when direction 1 is present;
//   - len(i2) == len(gd2) == len(b) when direction 2 is present;
//   - violations return ErrShapeMismatch; empty clouds return ErrEmptyCloud.
//
// Complexity: O(n+m).
func Grad(a, b pointcloud.Cloud, i1, i2 []int, gd1, gd2 []float64) (ga, gb pointcloud.Cloud, err error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, ErrEmptyCloud
	}
	if (i1 == nil) != (gd1 == nil) || (i2 == nil) != (gd2 == nil) {
		return nil, nil, ErrShapeMismatch
	}
	if i1 != nil && (len(i1) != len(a) || len(gd1) != len(a)) {
		return nil, nil, ErrShapeMismatch
	}
	if i2 != nil && (len(i2) != len(b) || len(gd2) != len(b)) {
		return nil, nil, ErrShapeMismatch
	}

	ga = make(pointcloud.Cloud, len(a))
	gb = make(pointcloud.Cloud, len(b))

	// Direction 1: d1[i] = ‖a[i] − b[i1[i]]‖².
	for i, j := range i1 {
		gp := pointcloud.Scale(pointcloud.Sub(a[i], b[j]), 2*gd1[i])
		ga[i] = pointcloud.Add(ga[i], gp)
		gb[j] = pointcloud.Sub(gb[j], gp)
	}

	// Direction 2: d2[j] = ‖b[j] − a[i2[j]]‖².
	for j, i := range i2 {
		gp := pointcloud.Scale(pointcloud.Sub(b[j], a[i]), 2*gd2[j])
		gb[j] = pointcloud.Add(gb[j], gp)
		ga[i] = pointcloud.Sub(ga[i], gp)
	}

	return ga, gb, nil
}
