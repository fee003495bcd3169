// Package pointcloud — deterministic cloud builders.
//
// Builders construct reproducible synthetic clouds for tests, benchmarks
// and examples. Every builder validates its parameters before allocating
// and fails only with the sentinel errors below.
package pointcloud

import (
	"errors"
	"math"
)

// ErrBadCount is returned when a requested point or axis count is < 1.
var ErrBadCount = errors.New("pointcloud: point count must be >= 1")

// ErrBadRadius is returned when a requested radius is not strictly positive.
var ErrBadRadius = errors.New("pointcloud: radius must be > 0")

// UnitCubeGrid returns perAxis³ points on a regular grid spanning [0,1]³,
// ordered row-major (x fastest, then y, then z). perAxis==1 yields the
// single point (0,0,0).
//
// Complexity: O(perAxis³).
func UnitCubeGrid(perAxis int) (Cloud, error) {
	if perAxis < 1 {
		return nil, ErrBadCount
	}
	step := 0.0
	if perAxis > 1 {
		step = 1 / float64(perAxis-1)
	}
	out := make(Cloud, 0, perAxis*perAxis*perAxis)
	for z := 0; z < perAxis; z++ {
		for y := 0; y < perAxis; y++ {
			for x := 0; x < perAxis; x++ {
				out = append(out, Point{float64(x) * step, float64(y) * step, float64(z) * step})
			}
		}
	}
	return out, nil
}

// Sphere returns n points on a sphere of the given radius centred at the
// origin, placed by the Fibonacci-lattice construction (near-uniform area
// coverage, fully deterministic, no RNG involved).
//
// Complexity: O(n).
func Sphere(n int, radius float64) (Cloud, error) {
	if n < 1 {
		return nil, ErrBadCount
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, ErrBadRadius
	}
	// Golden-angle increment in longitude, even steps in z.
	golden := math.Pi * (3 - math.Sqrt(5))
	out := make(Cloud, n)
	for i := 0; i < n; i++ {
		z := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - z*z)
		theta := golden * float64(i)
		out[i] = Point{
			radius * r * math.Cos(theta),
			radius * r * math.Sin(theta),
			radius * z,
		}
	}
	return out, nil
}

// Uniform returns n points sampled uniformly in the unit cube [0,1)³ from
// a deterministic stream (seed==0 ⇒ fixed default seed).
//
// Complexity: O(n).
func Uniform(n int, seed int64) (Cloud, error) {
	if n < 1 {
		return nil, ErrBadCount
	}
	rng := rngFromSeed(seed)
	out := make(Cloud, n)
	for i := range out {
		out[i] = Point{rng.Float64(), rng.Float64(), rng.Float64()}
	}
	return out, nil
}

// UniformBatch returns batch clouds of n uniform points each. Per-cloud
// streams are derived from seed with SplitMix64 mixing, so clouds within
// one batch are uncorrelated yet reproducible.
//
// Complexity: O(batch·n).
func UniformBatch(batch, n int, seed int64) (Batch, error) {
	if batch < 1 {
		return nil, ErrBadCount
	}
	out := make(Batch, batch)
	for b := range out {
		c, err := Uniform(n, deriveSeed(seed, uint64(b)))
		if err != nil {
			return nil, err
		}
		out[b] = c
	}
	return out, nil
}

// Jitter returns a copy of c with each coordinate perturbed by a uniform
// offset in [−scale, scale). The input is never mutated; scale==0 returns
// a plain copy.
//
// Complexity: O(n).
func Jitter(c Cloud, scale float64, seed int64) Cloud {
	rng := rngFromSeed(seed)
	out := make(Cloud, len(c))
	for i, p := range c {
		out[i] = Point{
			p[0] + scale*(2*rng.Float64()-1),
			p[1] + scale*(2*rng.Float64()-1),
			p[2] + scale*(2*rng.Float64()-1),
		}
	}
	return out
}
