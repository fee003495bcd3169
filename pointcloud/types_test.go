package pointcloud_test

import (
	"testing"

	"github.com/katalvlaran/pcmatch/pointcloud"
	"github.com/stretchr/testify/assert"
)

// TestSqDist_HandComputed verifies the squared and linear distances on a
// 3-4-0 triangle.
func TestSqDist_HandComputed(t *testing.T) {
	p := pointcloud.Point{0, 0, 0}
	q := pointcloud.Point{3, 4, 0}

	assert.Equal(t, 25.0, pointcloud.SqDist(p, q), "3-4-5 triangle squared")
	assert.Equal(t, 5.0, pointcloud.Dist(p, q), "3-4-5 triangle")
	assert.Equal(t, 0.0, pointcloud.SqDist(p, p), "distance to self is zero")
}

// TestPointOps verifies Sub/Add/Scale component-wise behavior.
func TestPointOps(t *testing.T) {
	p := pointcloud.Point{1, 2, 3}
	q := pointcloud.Point{4, 5, 6}

	assert.Equal(t, pointcloud.Point{-3, -3, -3}, pointcloud.Sub(p, q))
	assert.Equal(t, pointcloud.Point{5, 7, 9}, pointcloud.Add(p, q))
	assert.Equal(t, pointcloud.Point{2, 4, 6}, pointcloud.Scale(p, 2))
}

// TestCentroid_Bounds verifies centroid and bounding box on a unit square
// in the z=0 plane, plus the empty-cloud zero values.
func TestCentroid_Bounds(t *testing.T) {
	c := pointcloud.Cloud{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	}

	assert.Equal(t, pointcloud.Point{0.5, 0.5, 0}, pointcloud.Centroid(c))
	min, max := pointcloud.Bounds(c)
	assert.Equal(t, pointcloud.Point{0, 0, 0}, min)
	assert.Equal(t, pointcloud.Point{1, 1, 0}, max)

	assert.Equal(t, pointcloud.Point{}, pointcloud.Centroid(nil), "empty cloud centroid")
	emin, emax := pointcloud.Bounds(nil)
	assert.Equal(t, pointcloud.Point{}, emin)
	assert.Equal(t, pointcloud.Point{}, emax)
}

// TestTranslate_DoesNotMutate verifies Translate returns a shifted copy
// and leaves the input untouched.
func TestTranslate_DoesNotMutate(t *testing.T) {
	c := pointcloud.Cloud{{1, 1, 1}}
	out := pointcloud.Translate(c, pointcloud.Point{1, 2, 3})

	assert.Equal(t, pointcloud.Point{2, 3, 4}, out[0])
	assert.Equal(t, pointcloud.Point{1, 1, 1}, c[0], "input must not be mutated")
}

// TestClone_Independence verifies deep copies for Cloud and Batch.
func TestClone_Independence(t *testing.T) {
	c := pointcloud.Cloud{{1, 0, 0}}
	cp := pointcloud.Clone(c)
	cp[0][0] = 9
	assert.Equal(t, 1.0, c[0][0], "Clone must not alias the source")

	b := pointcloud.Batch{{{1, 0, 0}}}
	bp := pointcloud.CloneBatch(b)
	bp[0][0][0] = 9
	assert.Equal(t, 1.0, b[0][0][0], "CloneBatch must not alias the source")
}
