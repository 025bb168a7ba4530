package wireframe

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/torwire/constraint"
)

// ConstraintMatrices assembles the linear equality system B·x = d over the
// segment currents: one row per non-excluded constraint, in insertion
// order. By default, continuity rows at inactive nodes are removed so that
// rank-sensitive solvers receive no trivially redundant equations; pass
// KeepRedundancies to keep every row, WithoutConstrainedSegments to drop
// pinned rows and columns, and AssumeNoCrossings to additionally lift one
// continuity row per free-segment loop.
//
// The implicit-constraint cache is refreshed first. No guarantee of full
// rank is made beyond the documented exclusions: arbitrary caller-supplied
// rows may still be interdependent.
func (w *Wireframe) ConstraintMatrices(opts ...MatrixOption) (*mat.Dense, *mat.VecDense, error) {
	cfg := defaultMatrixConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w.ensureImplicits()

	excluded := make(map[string]struct{})
	if cfg.removeRedundancies {
		inactive, err := w.findInactiveNodes(cfg.assumeNoCrossings)
		if err != nil {
			return nil, nil, err
		}
		for _, n := range inactive {
			excluded[continuityName(n)] = struct{}{}
		}
	}
	if cfg.removeConstrainedSegments {
		w.cons.ForEach(func(c *constraint.Constraint) {
			if c.Kind.PinsSegment() {
				excluded[c.Name] = struct{}{}
			}
		})
	}

	// Column map: identity unless pinned columns are dropped.
	nCols := w.nSegments
	colOf := func(seg int) int { return seg }
	if cfg.removeConstrainedSegments {
		free := w.freeSegmentSet()
		cols := make([]int, w.nSegments)
		for i := range cols {
			cols[i] = -1
		}
		nCols = 0
		for s, ok := free.NextSet(0); ok; s, ok = free.NextSet(s + 1) {
			cols[s] = nCols
			nCols++
		}
		colOf = func(seg int) int { return cols[seg] }
	}

	var kept []*constraint.Constraint
	w.cons.ForEach(func(c *constraint.Constraint) {
		if _, skip := excluded[c.Name]; !skip {
			kept = append(kept, c)
		}
	})
	if len(kept) == 0 || nCols == 0 {
		return nil, nil, ErrNoConstraints
	}

	b := mat.NewDense(len(kept), nCols, nil)
	d := mat.NewVecDense(len(kept), nil)
	for r, c := range kept {
		for _, t := range c.Row {
			if col := colOf(t.Seg); col >= 0 {
				b.Set(r, col, b.At(r, col)+t.Coeff)
			}
		}
		d.SetVec(r, c.RHS)
	}

	return b, d, nil
}

// CheckConstraints verifies that every constraint equation is satisfied by
// the given currents vector to within the wireframe's tolerance:
// |B·x − d| < tol elementwise over the full, un-reduced constraint set.
// A nil currents argument checks the wireframe's own current vector.
func (w *Wireframe) CheckConstraints(currents []float64) (bool, error) {
	return w.CheckConstraintsTol(currents, w.tol)
}

// CheckConstraintsTol is CheckConstraints with an explicit tolerance.
func (w *Wireframe) CheckConstraintsTol(currents []float64, tol float64) (bool, error) {
	if !(tol > 0) {
		return false, fmt.Errorf("%w: got %v", ErrTolerance, tol)
	}
	x := currents
	if x == nil {
		x = w.currents
	} else if len(x) != w.nSegments {
		return false, fmt.Errorf("%w: got %d, want %d", ErrCurrentsLength, len(x), w.nSegments)
	}

	// Redundancy removal is never applied here: correctness checking must
	// consider every constraint.
	b, d, err := w.ConstraintMatrices(KeepRedundancies())
	if err != nil {
		return false, err
	}

	var res mat.VecDense
	res.MulVec(b, mat.NewVecDense(w.nSegments, x))
	res.SubVec(&res, d)
	for r := 0; r < res.Len(); r++ {
		if math.Abs(res.AtVec(r)) >= tol {
			return false, nil
		}
	}
	return true, nil
}
