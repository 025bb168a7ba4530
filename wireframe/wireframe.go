package wireframe

import (
	"fmt"

	"github.com/katalvlaran/torwire/constraint"
	"github.com/katalvlaran/torwire/logger"
	"github.com/katalvlaran/torwire/symmetry"
)

// New constructs a wireframe grid on surf with nPhi toroidal and nTheta
// poloidal divisions per half period. Both dimensions must be positive and
// even; the symmetry folding relies on it. Continuity constraints are
// derived immediately, so a freshly built wireframe is ready for segment
// and current-total constraints.
//
// Configuration errors (nil or asymmetric surface, malformed dimensions,
// non-positive tolerance) fail construction outright; no partial topology
// is ever visible. Complexity: O(nPhi·nTheta) time and memory.
func New(surf Surface, nPhi, nTheta int, opts ...Option) (*Wireframe, error) {
	if surf == nil {
		return nil, ErrNilSurface
	}
	if !surf.StellaratorSymmetric() {
		return nil, ErrNotStellaratorSymmetric
	}
	if nPhi < 2 || nTheta < 2 || nPhi%2 != 0 || nTheta%2 != 0 {
		return nil, fmt.Errorf("%w: got nPhi=%d, nTheta=%d", ErrGridDimension, nPhi, nTheta)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.tol > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrTolerance, cfg.tol)
	}

	// Fetch the half-period node grid from the surface collaborator and
	// flatten it row-major: node (i,j) -> i*nTheta + j.
	grid, err := surf.NodeGrid(nPhi, nTheta)
	if err != nil {
		return nil, fmt.Errorf("wireframe: node grid: %w", err)
	}
	if len(grid) != nPhi+1 {
		return nil, fmt.Errorf("%w: got %d toroidal rows, want %d", ErrNodeGrid, len(grid), nPhi+1)
	}
	nodesHP := make([]symmetry.Vec3, 0, (nPhi+1)*nTheta)
	for i, row := range grid {
		if len(row) != nTheta {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNodeGrid, i, len(row), nTheta)
		}
		nodesHP = append(nodesHP, row...)
	}

	copies, signs, err := symmetry.Replicate(nodesHP, surf.FieldPeriods())
	if err != nil {
		return nil, err
	}

	w := &Wireframe{
		nfp:          surf.FieldPeriods(),
		nPhi:         nPhi,
		nTheta:       nTheta,
		tol:          cfg.tol,
		nNodes:       (nPhi + 1) * nTheta,
		nTorSegments: nPhi * nTheta,
		nPolSegments: nPhi * nTheta,
		nSegments:    2 * nPhi * nTheta,
		nodes:        copies,
		segSigns:     signs,
	}

	w.buildSegments()
	w.buildConnectivity()
	w.buildCells()

	w.currents = make([]float64, w.nSegments)
	w.cons, err = constraint.NewSet(w.nSegments)
	if err != nil {
		return nil, err
	}
	w.implicitsUpdated = true
	if err = w.addContinuityConstraints(); err != nil {
		return nil, err
	}

	logger.Logger().Debug().
		Int("nfp", w.nfp).
		Int("nPhi", nPhi).
		Int("nTheta", nTheta).
		Int("nodes", w.nNodes).
		Int("segments", w.nSegments).
		Int("continuity", w.cons.Len()).
		Msg("wireframe built")

	return w, nil
}
