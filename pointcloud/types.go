// Package pointcloud — core types and scalar geometry helpers.
//
// This file defines the (batch, N, 3) data model as plain Go slices and a
// handful of allocation-conscious helpers shared by the solvers. All
// functions here are deterministic and side-effect free.
package pointcloud

import "math"

// Point is a single 3-D coordinate.
type Point [3]float64

// Cloud is one ordered point set (one batch element), shape (N, 3).
type Cloud []Point

// Batch is a batch of clouds, shape (batch, N, 3). The solvers require a
// uniform N across the batch; the type itself does not enforce it.
type Batch []Cloud

// Sub returns p − q component-wise.
func Sub(p, q Point) Point {
	return Point{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// Add returns p + q component-wise.
func Add(p, q Point) Point {
	return Point{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

// Scale returns s·p.
func Scale(p Point, s float64) Point {
	return Point{p[0] * s, p[1] * s, p[2] * s}
}

// SqDist returns the squared Euclidean distance ‖p−q‖².
//
// Kept as inline three-component arithmetic: this is the innermost call of
// every solver loop and must not allocate.
func SqDist(p, q Point) float64 {
	dx, dy, dz := p[0]-q[0], p[1]-q[1], p[2]-q[2]
	return dx*dx + dy*dy + dz*dz
}

// Dist returns the Euclidean distance ‖p−q‖.
func Dist(p, q Point) float64 {
	return math.Sqrt(SqDist(p, q))
}

// Centroid returns the arithmetic mean of c, or the zero Point for an
// empty cloud.
func Centroid(c Cloud) Point {
	if len(c) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range c {
		sum = Add(sum, p)
	}
	return Scale(sum, 1/float64(len(c)))
}

// Bounds returns the axis-aligned bounding box of c. For an empty cloud
// both corners are the zero Point.
func Bounds(c Cloud) (min, max Point) {
	if len(c) == 0 {
		return Point{}, Point{}
	}
	min, max = c[0], c[0]
	for _, p := range c[1:] {
		for d := 0; d < 3; d++ {
			if p[d] < min[d] {
				min[d] = p[d]
			}
			if p[d] > max[d] {
				max[d] = p[d]
			}
		}
	}
	return min, max
}

// Translate returns a new cloud with offset added to every point. The
// input is never mutated.
func Translate(c Cloud, offset Point) Cloud {
	out := make(Cloud, len(c))
	for i, p := range c {
		out[i] = Add(p, offset)
	}
	return out
}

// Clone returns a deep copy of c.
func Clone(c Cloud) Cloud {
	out := make(Cloud, len(c))
	copy(out, c)
	return out
}

// CloneBatch returns a deep copy of b (each cloud copied).
func CloneBatch(b Batch) Batch {
	out := make(Batch, len(b))
	for i, c := range b {
		out[i] = Clone(c)
	}
	return out
}
