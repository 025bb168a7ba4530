package wireframe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/torwire/wireframe"
)

func TestConstraintMatrices_FullGrid(t *testing.T) {
	w := build44(t)

	b, d, err := w.ConstraintMatrices()
	require.NoError(t, err)

	// 14 continuity constraints over 32 segments; every node still carries
	// free segments, so nothing is excluded.
	rows, cols := b.Dims()
	require.Equal(t, 14, rows)
	require.Equal(t, 32, cols)
	require.Equal(t, 14, d.Len())
	for r := 0; r < rows; r++ {
		require.Zero(t, d.AtVec(r))
	}

	// Each continuity row nets out: two +1 and two -1 entries.
	for r := 0; r < rows; r++ {
		sum, nonzero := 0.0, 0
		for c := 0; c < cols; c++ {
			if v := b.At(r, c); v != 0 {
				sum += v
				nonzero++
			}
		}
		require.Zero(t, sum, "row %d", r)
		require.Equal(t, 4, nonzero, "row %d", r)
	}
}

func TestConstraintMatrices_InactiveNodeRemoved(t *testing.T) {
	w := build44(t)

	// Pinning {5, 22, 9} strands segment 23; node (2,1) then borders no
	// free segment and its continuity row becomes trivially redundant.
	require.NoError(t, w.SetSegmentsConstrained(5, 22, 9))

	b, _, err := w.ConstraintMatrices()
	require.NoError(t, err)
	rows, cols := b.Dims()
	require.Equal(t, 17, rows) // 13 continuity + 3 explicit + 1 implicit
	require.Equal(t, 32, cols)

	b, _, err = w.ConstraintMatrices(wireframe.KeepRedundancies())
	require.NoError(t, err)
	rows, _ = b.Dims()
	require.Equal(t, 18, rows)
}

func TestConstraintMatrices_WithoutConstrainedSegments(t *testing.T) {
	w := build44(t)
	require.NoError(t, w.SetSegmentsConstrained(5, 22, 9))

	b, d, err := w.ConstraintMatrices(wireframe.WithoutConstrainedSegments())
	require.NoError(t, err)
	rows, cols := b.Dims()
	require.Equal(t, 13, rows) // pinned rows dropped along with node (2,1)
	require.Equal(t, 28, cols) // 32 segments minus the 4 pinned columns
	require.Equal(t, 13, d.Len())
}

func TestConstraintMatrices_RHSPlacement(t *testing.T) {
	w := build44(t)
	const total = 12.5
	require.NoError(t, w.AddToroidalCurrentConstraint(total))

	b, d, err := w.ConstraintMatrices()
	require.NoError(t, err)

	// Insertion order puts the toroidal-current row last; it sums the
	// first-plane toroidal segments.
	rows, _ := b.Dims()
	require.Equal(t, 15, rows)
	require.Equal(t, total, d.AtVec(rows-1))
	for s := 0; s < w.NTheta(); s++ {
		require.Equal(t, 1.0, b.At(rows-1, s))
	}
}

func TestConstraintMatrices_AllPinned(t *testing.T) {
	w := build44(t)

	all := make([]int, w.NSegments())
	for s := range all {
		all[s] = s
	}
	require.NoError(t, w.SetSegmentsConstrained(all...))

	// Every node is inactive; with pinned rows and columns removed there
	// is nothing left to export.
	_, _, err := w.ConstraintMatrices(wireframe.WithoutConstrainedSegments())
	require.ErrorIs(t, err, wireframe.ErrNoConstraints)

	// Keeping the pinned rows still yields a valid system.
	b, _, err := w.ConstraintMatrices()
	require.NoError(t, err)
	rows, cols := b.Dims()
	require.Equal(t, w.NSegments(), rows) // one pin row per segment
	require.Equal(t, w.NSegments(), cols)
}

func TestConstraintMatrices_CrossingDetection(t *testing.T) {
	w := build44(t)

	// On a fully free grid every node is a branch point, so the loop walk
	// must refuse the no-crossings assumption.
	_, _, err := w.ConstraintMatrices(wireframe.AssumeNoCrossings())
	require.ErrorIs(t, err, wireframe.ErrLoopCrossing)
}

func TestCheckConstraints_Validation(t *testing.T) {
	w := build44(t)

	_, err := w.CheckConstraints(make([]float64, 7))
	require.ErrorIs(t, err, wireframe.ErrCurrentsLength)

	_, err = w.CheckConstraintsTol(nil, 0)
	require.ErrorIs(t, err, wireframe.ErrTolerance)

	// A current on a pinned segment violates its zero-current row.
	require.NoError(t, w.SetSegmentsConstrained(5))
	currents := make([]float64, w.NSegments())
	currents[5] = 1e-6
	ok, err := w.CheckConstraints(currents)
	require.NoError(t, err)
	require.False(t, ok)

	// The same violation passes under a coarse enough tolerance.
	ok, err = w.CheckConstraintsTol(currents, 1e-3)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckConstraints_ContinuityViolation(t *testing.T) {
	w := build44(t)

	// A single energized toroidal segment sources current at one node and
	// sinks it at another.
	currents := make([]float64, w.NSegments())
	currents[5] = 1.0
	ok, err := w.CheckConstraints(currents)
	require.NoError(t, err)
	require.False(t, ok)

	// A closed poloidal ring in plane 1 (segments 18..21) satisfies
	// continuity everywhere.
	currents = make([]float64, w.NSegments())
	for s := 18; s <= 21; s++ {
		currents[s] = 1.0
	}
	ok, err = w.CheckConstraints(currents)
	require.NoError(t, err)
	require.True(t, ok)
}
