package wireframe

import "github.com/bits-and-blooms/bitset"

// Cell-level queries, used by loop-current parameterizations in
// downstream post-processing.

// CellKey returns the 4 segments bordering cell c in canonical order
// {CellTorLower, CellPolHigherTor, CellTorHigher, CellPolLowerTor}.
func (w *Wireframe) CellKey(c int) [4]int { return w.cellKey[c] }

// CellNeighbors returns the 4 cells adjacent to cell c in canonical order
// {NbrNegPol, NbrPosTor, NbrPosPol, NbrNegTor}, with wrap and fold
// handling at the symmetry planes and the poloidal seam.
func (w *Wireframe) CellNeighbors(c int) [4]int { return w.cellNeighbors[c] }

// CellKeys returns a copy of the full cell/segment table, one row per cell.
func (w *Wireframe) CellKeys() [][4]int {
	return append([][4]int(nil), w.cellKey...)
}

// CellNeighborTable returns a copy of the full cell adjacency table.
func (w *Wireframe) CellNeighborTable() [][4]int {
	return append([][4]int(nil), w.cellNeighbors...)
}

// FreeCellSet returns the set of free cells: cells bordered by no
// constrained segment. The implicit-constraint cache is refreshed first.
func (w *Wireframe) FreeCellSet() *bitset.BitSet {
	pinned := make(map[int]struct{})
	for _, s := range w.ConstrainedSegments(IncludeAll) {
		pinned[s] = struct{}{}
	}

	cells := bitset.New(uint(w.NCells()))
	for c := range w.cellKey {
		blocked := false
		for _, s := range w.cellKey[c] {
			if _, bad := pinned[s]; bad {
				blocked = true
				break
			}
		}
		if !blocked {
			cells.Set(uint(c))
		}
	}
	return cells
}

// FreeCells returns the ids of free cells, ascending.
func (w *Wireframe) FreeCells() []int {
	set := w.FreeCellSet()
	out := make([]int, 0, set.Count())
	for c, ok := set.NextSet(0); ok; c, ok = set.NextSet(c + 1) {
		out = append(out, int(c))
	}
	return out
}
