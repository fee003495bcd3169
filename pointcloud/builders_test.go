package pointcloud_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pcmatch/pointcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnitCubeGrid_ShapeAndOrder verifies the point count, the [0,1]³
// span, and the row-major ordering (x fastest).
func TestUnitCubeGrid_ShapeAndOrder(t *testing.T) {
	c, err := pointcloud.UnitCubeGrid(3)
	require.NoError(t, err)
	require.Len(t, c, 27)

	assert.Equal(t, pointcloud.Point{0, 0, 0}, c[0], "first grid corner")
	assert.Equal(t, pointcloud.Point{0.5, 0, 0}, c[1], "x varies fastest")
	assert.Equal(t, pointcloud.Point{0, 0.5, 0}, c[3], "then y")
	assert.Equal(t, pointcloud.Point{1, 1, 1}, c[26], "last grid corner")
}

// TestUnitCubeGrid_Degenerate verifies the single-point grid and the
// bad-count sentinel.
func TestUnitCubeGrid_Degenerate(t *testing.T) {
	c, err := pointcloud.UnitCubeGrid(1)
	require.NoError(t, err)
	assert.Equal(t, pointcloud.Cloud{{0, 0, 0}}, c)

	_, err = pointcloud.UnitCubeGrid(0)
	assert.ErrorIs(t, err, pointcloud.ErrBadCount)
}

// TestSphere_RadiusAndErrors verifies every lattice point sits on the
// sphere and the sentinel errors fire.
func TestSphere_RadiusAndErrors(t *testing.T) {
	const r = 2.5
	c, err := pointcloud.Sphere(100, r)
	require.NoError(t, err)
	require.Len(t, c, 100)
	for i, p := range c {
		assert.InDelta(t, r, pointcloud.Dist(p, pointcloud.Point{}), 1e-12, "point %d off the sphere", i)
	}

	_, err = pointcloud.Sphere(0, 1)
	assert.ErrorIs(t, err, pointcloud.ErrBadCount)
	_, err = pointcloud.Sphere(10, 0)
	assert.ErrorIs(t, err, pointcloud.ErrBadRadius)
	_, err = pointcloud.Sphere(10, math.NaN())
	assert.ErrorIs(t, err, pointcloud.ErrBadRadius)
}

// TestUniform_DeterministicSeeds verifies seed reproducibility, the
// seed==0 default-seed policy, and the unit-cube range.
func TestUniform_DeterministicSeeds(t *testing.T) {
	a, err := pointcloud.Uniform(50, 7)
	require.NoError(t, err)
	b, err := pointcloud.Uniform(50, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the same cloud")

	zero, err := pointcloud.Uniform(50, 0)
	require.NoError(t, err)
	one, err := pointcloud.Uniform(50, 1)
	require.NoError(t, err)
	assert.Equal(t, one, zero, "seed 0 maps to the fixed default seed")

	for _, p := range a {
		for d := 0; d < 3; d++ {
			assert.GreaterOrEqual(t, p[d], 0.0)
			assert.Less(t, p[d], 1.0)
		}
	}

	_, err = pointcloud.Uniform(0, 1)
	assert.ErrorIs(t, err, pointcloud.ErrBadCount)
}

// TestUniformBatch_IndependentStreams verifies per-element streams differ
// while the batch as a whole stays reproducible.
func TestUniformBatch_IndependentStreams(t *testing.T) {
	b1, err := pointcloud.UniformBatch(3, 16, 42)
	require.NoError(t, err)
	require.Len(t, b1, 3)

	b2, err := pointcloud.UniformBatch(3, 16, 42)
	require.NoError(t, err)
	assert.Equal(t, b1, b2, "same seed must reproduce the same batch")

	assert.NotEqual(t, b1[0], b1[1], "derived streams must not coincide")

	_, err = pointcloud.UniformBatch(0, 16, 42)
	assert.ErrorIs(t, err, pointcloud.ErrBadCount)
}

// TestJitter_ScaleBound verifies perturbations stay within ±scale and the
// input cloud is untouched.
func TestJitter_ScaleBound(t *testing.T) {
	c, err := pointcloud.UnitCubeGrid(3)
	require.NoError(t, err)
	orig := pointcloud.Clone(c)

	const scale = 0.01
	out := pointcloud.Jitter(c, scale, 5)
	require.Len(t, out, len(c))
	for i := range out {
		for d := 0; d < 3; d++ {
			assert.LessOrEqual(t, math.Abs(out[i][d]-c[i][d]), scale, "point %d dim %d exceeds scale", i, d)
		}
	}
	assert.Equal(t, orig, c, "input must not be mutated")
}
