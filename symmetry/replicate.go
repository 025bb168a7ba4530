// Package symmetry replicates half-period node coordinates across the
// stellarator-symmetric copies of a torus.
package symmetry

import (
	"errors"
	"math"
)

// Sentinel errors for symmetry operations.
var (
	// ErrFieldPeriods indicates a non-positive field-period count.
	ErrFieldPeriods = errors.New("symmetry: field-period count must be positive")
	// ErrNoNodes indicates an empty input node set.
	ErrNoNodes = errors.New("symmetry: node set must not be empty")
)

// Vec3 is a Cartesian point or displacement in 3-D space.
type Vec3 [3]float64

// Replicate expands the half-period node coordinates into all 2·nfp
// symmetric copies and reports the current-sign convention per copy.
//
// Copy 0 is the raw half-period (sign +1). Copy 1 is the stellarator
// reflection (x, y, z) → (x, −y, −z) (sign −1). Copies 2i and 2i+1 for
// i = 1..nfp−1 are copies 0 and 1 rotated by 2πi/nfp about the z axis,
// with signs +1 and −1 respectively.
//
// The input slice is never aliased: every copy, including copy 0, owns its
// own storage. Complexity: O(nfp·N) time and memory.
func Replicate(nodes []Vec3, nfp int) ([][]Vec3, []float64, error) {
	if nfp < 1 {
		return nil, nil, ErrFieldPeriods
	}
	if len(nodes) == 0 {
		return nil, nil, ErrNoNodes
	}

	copies := make([][]Vec3, 2*nfp)
	signs := make([]float64, 2*nfp)

	// Copy 0: the half-period as given.
	copies[0] = append([]Vec3(nil), nodes...)
	signs[0] = 1.0

	// Copy 1: stellarator reflection; positive current direction reverses.
	copies[1] = make([]Vec3, len(nodes))
	for n, p := range nodes {
		copies[1][n] = Vec3{p[0], -p[1], -p[2]}
	}
	signs[1] = -1.0

	// Remaining copies: rotate copies 0 and 1 about the toroidal axis.
	for i := 1; i < nfp; i++ {
		phi := 2.0 * math.Pi * float64(i) / float64(nfp)
		sin, cos := math.Sincos(phi)

		copies[2*i] = rotateZ(copies[0], sin, cos)
		copies[2*i+1] = rotateZ(copies[1], sin, cos)
		signs[2*i] = 1.0
		signs[2*i+1] = -1.0
	}

	return copies, signs, nil
}

// rotateZ returns src rotated about the z axis; z coordinates are unchanged.
func rotateZ(src []Vec3, sin, cos float64) []Vec3 {
	dst := make([]Vec3, len(src))
	for n, p := range src {
		dst[n] = Vec3{
			cos*p[0] - sin*p[1],
			sin*p[0] + cos*p[1],
			p[2],
		}
	}
	return dst
}
