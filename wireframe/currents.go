package wireframe

import (
	"fmt"
	"math"

	"github.com/katalvlaran/torwire/logger"
)

// SetCurrents replaces the segment current vector after validating its
// length. It does not check constraints; use CheckConstraints for that.
func (w *Wireframe) SetCurrents(currents []float64) error {
	if len(currents) != w.nSegments {
		return fmt.Errorf("%w: got %d, want %d", ErrCurrentsLength, len(currents), w.nSegments)
	}
	copy(w.currents, currents)
	return nil
}

// AddTFCoilCurrents superposes nTF planar toroidal-field coils per half
// period onto the existing currents. The loops are spaced as evenly as
// possible within the grid; positive current flows in the positive
// toroidal direction, creating a negative toroidal magnetic field.
//
// The combined currents are validated against every constraint before
// committing: on violation the wireframe's currents are left unmodified
// and ErrConstraintsViolated is returned.
func (w *Wireframe) AddTFCoilCurrents(nTF int, currentPerCoil float64) error {
	if nTF < 1 || nTF > w.nPhi {
		return fmt.Errorf("%w: got %d with nPhi=%d", ErrTFCoilCount, nTF, w.nPhi)
	}

	// Toroidal positions of the coil planes, evenly spread with a
	// half-step offset.
	step := float64(w.nPhi) / float64(nTF)
	proposed := append([]float64(nil), w.currents...)
	for k := 0; k < nTF; k++ {
		plane := int(math.Floor(float64(k)*step + 0.5*step))

		var ind0, ind1 int
		if plane == 0 {
			// The first symmetry plane holds only the independent half of
			// a poloidal loop; the reflection carries the rest.
			ind0 = w.nTorSegments
			ind1 = ind0 + w.nTheta/2
		} else {
			ind0 = w.nTorSegments + w.nTheta/2 + (plane-1)*w.nTheta
			ind1 = ind0 + w.nTheta
		}
		for s := ind0; s < ind1; s++ {
			proposed[s] += currentPerCoil
		}
	}

	valid, err := w.CheckConstraints(proposed)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("%w: %d TF coils at %v per coil", ErrConstraintsViolated, nTF, currentPerCoil)
	}
	copy(w.currents, proposed)

	logger.Logger().Debug().
		Int("coils", nTF).
		Float64("per_coil", currentPerCoil).
		Msg("TF coil currents added")

	return nil
}
