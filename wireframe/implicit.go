package wireframe

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/torwire/logger"
)

// Implicit constraint propagation. A free segment whose node has no other
// free connected segment cannot carry current without violating continuity
// at that node, so it is pinned to zero automatically. Pinning one segment
// can isolate another, hence the fixed point.

// ensureImplicits refreshes the implicit zero-current constraints when the
// cache is stale. It is a no-op when clean.
func (w *Wireframe) ensureImplicits() {
	if w.implicitsUpdated {
		return
	}
	w.refreshImplicits()
}

// refreshImplicits runs the propagation to a fixed point. Each pass
// tallies, per node, how many distinct connected segments are free (a
// twice-listed segment at a fold node counts once); nodes with exactly one
// free segment force that segment to zero. Termination is guaranteed: a
// pass either pins at least one segment or finds no single-free node.
func (w *Wireframe) refreshImplicits() {
	passes, added := 0, 0
	for {
		passes++
		free := w.freeSegmentSet()

		// Nodes with exactly one free connected segment, per this pass's
		// snapshot of the free set.
		var lone []int
		for n := 0; n < w.nNodes; n++ {
			if w.freeConnectedCount(n, free) == 1 {
				lone = append(lone, n)
			}
		}
		if len(lone) == 0 {
			break
		}

		for _, n := range lone {
			for _, s := range w.distinctConnected(n) {
				if w.cons.Has(segmentName(s, false)) || w.cons.Has(segmentName(s, true)) {
					continue
				}
				// Cannot fail: s is in range and its implicit name is absent.
				if err := w.addSegmentConstraints([]int{s}, true); err != nil {
					panic(err)
				}
				added++
			}
		}
	}
	w.implicitsUpdated = true

	if added > 0 {
		logger.Logger().Debug().
			Int("passes", passes).
			Int("pinned", added).
			Msg("implicit zero-current constraints propagated")
	}
}

// freeConnectedCount counts the distinct free segments connected to node n.
func (w *Wireframe) freeConnectedCount(n int, free *bitset.BitSet) int {
	count := 0
	for _, s := range w.distinctConnected(n) {
		if free.Test(uint(s)) {
			count++
		}
	}
	return count
}

// distinctConnected returns node n's connected segments with duplicate
// slots (symmetry-plane fold points) collapsed.
func (w *Wireframe) distinctConnected(n int) []int {
	cs := w.connected[n]
	out := make([]int, 0, 4)
	for _, s := range cs {
		dup := false
		for _, seen := range out {
			if seen == s {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}
