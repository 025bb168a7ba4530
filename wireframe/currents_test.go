package wireframe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/torwire/wireframe"
)

func TestSetCurrents(t *testing.T) {
	w := build44(t)

	require.ErrorIs(t, w.SetCurrents(make([]float64, 7)), wireframe.ErrCurrentsLength)

	currents := make([]float64, w.NSegments())
	currents[18] = 1.5
	require.NoError(t, w.SetCurrents(currents))
	require.Equal(t, 1.5, w.Currents()[18])

	// The wireframe owns its storage: mutating the input afterwards has
	// no effect.
	currents[18] = 99
	require.Equal(t, 1.5, w.Currents()[18])
}

func TestAddTFCoilCurrents(t *testing.T) {
	w := build44(t)

	for _, n := range []int{0, -1, 5} {
		require.ErrorIs(t, w.AddTFCoilCurrents(n, 1e5), wireframe.ErrTFCoilCount)
	}

	// Two coils on a 4-plane half period land on planes 1 and 3: poloidal
	// segments 18..21 and 26..29.
	const per = 1.0e5
	require.NoError(t, w.AddTFCoilCurrents(2, per))

	got := w.Currents()
	for s := 0; s < w.NSegments(); s++ {
		want := 0.0
		if (s >= 18 && s <= 21) || (s >= 26 && s <= 29) {
			want = per
		}
		require.Equal(t, want, got[s], "segment %d", s)
	}

	ok, err := w.CheckConstraints(nil)
	require.NoError(t, err)
	require.True(t, ok)

	// Superposition accumulates.
	require.NoError(t, w.AddTFCoilCurrents(2, per))
	require.Equal(t, 2*per, w.Currents()[18])
}

func TestAddTFCoilCurrents_SymmetryPlaneCoil(t *testing.T) {
	w := build44(t)

	// Four coils on four planes: the plane-0 coil exists only as its
	// independent half (segments 16 and 17), mirrored by symmetry.
	const per = 7.5e4
	require.NoError(t, w.AddTFCoilCurrents(4, per))

	got := w.Currents()
	require.Equal(t, per, got[16])
	require.Equal(t, per, got[17])
	for s := 0; s < w.NTorSegments(); s++ {
		require.Zero(t, got[s], "toroidal segment %d", s)
	}

	ok, err := w.CheckConstraints(nil)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAddTFCoilCurrents_RejectedOnViolation(t *testing.T) {
	w := build44(t)

	// TF coils add no toroidal current, so a nonzero toroidal-current
	// requirement rejects the superposition.
	require.NoError(t, w.AddToroidalCurrentConstraint(5e5))

	err := w.AddTFCoilCurrents(2, 1e5)
	require.ErrorIs(t, err, wireframe.ErrConstraintsViolated)

	// The rejected proposal left the currents untouched.
	for s, c := range w.Currents() {
		require.Zero(t, c, "segment %d", s)
	}
}

func TestAddTFCoilCurrents_PinnedPlaneRejected(t *testing.T) {
	w := build44(t)

	// Pinning one segment of a target coil plane makes the superposition
	// infeasible.
	require.NoError(t, w.SetSegmentsConstrained(18))

	err := w.AddTFCoilCurrents(2, 1e5)
	require.ErrorIs(t, err, wireframe.ErrConstraintsViolated)
	for s, c := range w.Currents() {
		require.Zero(t, c, "segment %d", s)
	}
}
