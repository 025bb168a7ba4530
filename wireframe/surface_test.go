package wireframe_test

import (
	"errors"
	"math"

	"github.com/katalvlaran/torwire/symmetry"
)

// torus is a plain circular-cross-section toroidal surface used as the
// Surface collaborator throughout the tests. Nodes are placed at evenly
// spaced poloidal and toroidal angles over one half period.
type torus struct {
	nfp      int
	stellsym bool
	major    float64
	minor    float64
}

func testTorus(nfp int) torus {
	return torus{nfp: nfp, stellsym: true, major: 1.0, minor: 0.3}
}

func (t torus) FieldPeriods() int { return t.nfp }

func (t torus) StellaratorSymmetric() bool { return t.stellsym }

func (t torus) NodeGrid(nPhi, nTheta int) ([][]symmetry.Vec3, error) {
	grid := make([][]symmetry.Vec3, nPhi+1)
	for i := range grid {
		phi := math.Pi * float64(i) / (float64(t.nfp) * float64(nPhi))
		grid[i] = make([]symmetry.Vec3, nTheta)
		for j := range grid[i] {
			theta := 2 * math.Pi * float64(j) / float64(nTheta)
			r := t.major + t.minor*math.Cos(theta)
			grid[i][j] = symmetry.Vec3{
				r * math.Cos(phi),
				r * math.Sin(phi),
				t.minor * math.Sin(theta),
			}
		}
	}
	return grid, nil
}

// brokenSurface returns a malformed or failing node grid on demand.
type brokenSurface struct {
	torus
	failWith error
	dropRow  bool
}

func (b brokenSurface) NodeGrid(nPhi, nTheta int) ([][]symmetry.Vec3, error) {
	if b.failWith != nil {
		return nil, b.failWith
	}
	grid, err := b.torus.NodeGrid(nPhi, nTheta)
	if err != nil {
		return nil, err
	}
	if b.dropRow {
		grid = grid[:len(grid)-1]
	}
	return grid, nil
}

var errGeometry = errors.New("geometry backend unavailable")
