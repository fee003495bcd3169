package chamfer_test

import (
	"testing"

	"github.com/katalvlaran/pcmatch/chamfer"
	"github.com/katalvlaran/pcmatch/pointcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIBSLoss_TangentSphereVanishes verifies that a sphere whose radius
// equals the distance to the surface contributes (numerically) nothing.
func TestIBSLoss_TangentSphereVanishes(t *testing.T) {
	surface, err := pointcloud.Sphere(200, 1)
	require.NoError(t, err)

	loss, err := chamfer.IBSLoss(pointcloud.Cloud{{0, 0, 0}}, []float64{1}, surface)
	require.NoError(t, err)
	assert.InDelta(t, 0, loss, 1e-12)
}

// TestIBSLoss_HandComputed verifies the absolute-miss mean on a two-sphere
// configuration.
func TestIBSLoss_HandComputed(t *testing.T) {
	pcd := pointcloud.Cloud{{1, 0, 0}}
	centers := pointcloud.Cloud{{0, 0, 0}, {3, 0, 0}}
	radii := []float64{0.5, 2.5}

	// Misses: |1−0.5| = 0.5 and |2−2.5| = 0.5 ⇒ mean 0.5.
	loss, err := chamfer.IBSLoss(centers, radii, pcd)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, loss, 1e-12)
}

// TestIBSLoss_Errors verifies the sentinel taxonomy.
func TestIBSLoss_Errors(t *testing.T) {
	c := pointcloud.Cloud{{0, 0, 0}}

	_, err := chamfer.IBSLoss(nil, nil, c)
	assert.ErrorIs(t, err, chamfer.ErrEmptyCloud)

	_, err = chamfer.IBSLoss(c, []float64{1}, nil)
	assert.ErrorIs(t, err, chamfer.ErrEmptyCloud)

	_, err = chamfer.IBSLoss(c, []float64{1, 2}, c)
	assert.ErrorIs(t, err, chamfer.ErrShapeMismatch)
}
