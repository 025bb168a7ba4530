package wireframe

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Windowpane builds a wireframe whose current is constrained to flow only
// within regularly spaced rectangular loops of the grid — windowpane
// coils. nCoilsTor×nCoilsPol coils are laid out per half period, each
// spanning sizeTor×sizePol grid cells, separated by gapTor×gapPol cells.
// Sizes and gaps must be positive and even so that coils sit symmetrically
// within the folded grid.
//
// Note: the no-crossings assumption holds by construction for the
// resulting wireframe, so pass AssumeNoCrossings wherever relevant (e.g.
// when exporting constraint matrices for rank-sensitive solves).
func Windowpane(surf Surface, nCoilsTor, nCoilsPol, sizeTor, sizePol, gapTor, gapPol int, opts ...Option) (*Wireframe, error) {
	if nCoilsTor < 1 || nCoilsPol < 1 {
		return nil, fmt.Errorf("%w: coil counts %d×%d", ErrWindowpaneParam, nCoilsTor, nCoilsPol)
	}
	for _, v := range []int{sizeTor, sizePol, gapTor, gapPol} {
		if v < 2 || v%2 != 0 {
			return nil, fmt.Errorf("%w: size %d×%d, gap %d×%d",
				ErrWindowpaneParam, sizeTor, sizePol, gapTor, gapPol)
		}
	}

	nPhi := nCoilsTor * (sizeTor + gapTor)
	nTheta := nCoilsPol * (sizePol + gapPol)
	w, err := New(surf, nPhi, nTheta, opts...)
	if err != nil {
		return nil, err
	}

	coil := bitset.New(uint(w.nSegments))
	unitPol := sizePol + gapPol
	unitTor := sizeTor + gapTor
	unitOffs := unitTor * nTheta
	halfGapTor := gapTor / 2
	halfGapPol := gapPol / 2

	// Toroidal segments forming the top and bottom edge of each coil.
	for i := 0; i < nCoilsTor; i++ {
		for j := halfGapTor; j < halfGapTor+sizeTor; j++ {
			offs := i*unitOffs + j*nTheta
			for b := halfGapPol; b < nTheta; b += unitPol {
				coil.Set(uint(offs + b))
				coil.Set(uint(offs + b + sizePol))
			}
		}
	}

	// Poloidal segments forming the left and right edge of each coil.
	for i := 0; i < nCoilsTor; i++ {
		for j := 0; j < nCoilsPol; j++ {
			offsLeft := i*unitOffs + halfGapTor*nTheta - nTheta/2 + j*unitPol + w.nTorSegments
			offsRight := offsLeft + sizeTor*nTheta
			for k := halfGapPol; k < halfGapPol+sizePol; k++ {
				coil.Set(uint(offsLeft + k))
				coil.Set(uint(offsRight + k))
			}
		}
	}

	// Constrain everything that is not part of a coil.
	unused := make([]int, 0, w.nSegments-int(coil.Count()))
	for s := 0; s < w.nSegments; s++ {
		if !coil.Test(uint(s)) {
			unused = append(unused, s)
		}
	}
	if err = w.SetSegmentsConstrained(unused...); err != nil {
		return nil, err
	}

	return w, nil
}
