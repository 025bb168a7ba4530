package wireframe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/torwire/wireframe"
)

func TestConstrainCollidingSegments_Validation(t *testing.T) {
	w := build44(t)

	_, err := w.ConstrainCollidingSegments(nil, 5)
	require.Error(t, err)

	never := func(x, y, z float64) bool { return false }
	_, err = w.ConstrainCollidingSegments(never, 1)
	require.ErrorIs(t, err, wireframe.ErrPointsPerSegment)
}

func TestConstrainCollidingSegments_NoHits(t *testing.T) {
	w := build44(t)

	never := func(x, y, z float64) bool { return false }
	hit, err := w.ConstrainCollidingSegments(never, 5)
	require.NoError(t, err)
	require.Empty(t, hit)
	require.Empty(t, w.ConstrainedSegments(wireframe.IncludeAll))
}

func TestConstrainCollidingSegments_SphereObstacle(t *testing.T) {
	w := build44(t)

	// A small sphere at the outboard midplane of the phi=0 symmetry plane
	// touches exactly the two segments meeting at node (0,0), which sits
	// at (major+minor, 0, 0) on the test torus.
	sphere := func(x, y, z float64) bool {
		dx, dy, dz := x-1.3, y, z
		return math.Sqrt(dx*dx+dy*dy+dz*dz) < 0.1
	}

	hit, err := w.ConstrainCollidingSegments(sphere, 5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 16}, hit)
	require.Equal(t, []int{0, 16}, w.ConstrainedSegments(wireframe.IncludeAll))

	ok, err := w.CheckConstraints(nil)
	require.NoError(t, err)
	require.True(t, ok)
}
