package wireframe

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/torwire/logger"
)

// Redundancy analysis for the continuity constraints. A node whose every
// connected segment is pinned carries no current, so its continuity
// constraint is trivially satisfied and must be dropped from any matrix
// handed to a rank-sensitive solver. Under the no-crossings assumption the
// free segments form disjoint simple loops, and each loop contributes one
// further redundant continuity constraint: shifting a uniform current
// around a closed loop violates continuity nowhere on it.

// findInactiveNodes returns, ascending, the ids of nodes whose continuity
// constraint is redundant. With assumeNoCrossings it additionally lifts
// exactly one continuity constraint per discovered free-segment loop.
//
// A node with exactly one free connected segment violates a hard invariant
// (implicit propagation must already have pinned it) and fails with
// ErrDanglingSegment; a branch point found during the loop walk fails with
// ErrLoopCrossing. Neither condition is ever silently tolerated.
func (w *Wireframe) findInactiveNodes(assumeNoCrossings bool) ([]int, error) {
	w.ensureImplicits()
	free := w.freeSegmentSet()

	inactive := bitset.New(uint(w.nNodes))
	for n := 0; n < w.nNodes; n++ {
		switch w.freeConnectedCount(n, free) {
		case 0:
			inactive.Set(uint(n))
		case 1:
			return nil, fmt.Errorf("%w: node %d, segments %v",
				ErrDanglingSegment, n, w.connected[n])
		}
	}

	if assumeNoCrossings {
		if err := w.liftLoopConstraints(free, inactive); err != nil {
			return nil, err
		}
	}

	out := make([]int, 0, inactive.Count())
	for n, ok := inactive.NextSet(0); ok; n, ok = inactive.NextSet(n + 1) {
		out = append(out, int(n))
	}
	return out, nil
}

// liftLoopConstraints walks every free-segment loop and marks one
// continuity-constrained node per loop as redundant in the marks set.
// Walks start from the lowest unvisited free segment, so the result is
// deterministic.
func (w *Wireframe) liftLoopConstraints(free, marks *bitset.BitSet) error {
	visited := bitset.New(uint(w.nSegments))
	loops := 0

	for s0, ok := free.NextSet(0); ok; s0, ok = free.NextSet(s0 + 1) {
		if visited.Test(s0) {
			continue
		}
		visited.Set(s0)

		seg := int(s0)
		lifted := false
		for {
			ends := w.segments[seg]

			// At most one continuity constraint is removed per loop; some
			// symmetry-plane nodes carry none, so keep trying along the walk.
			if !lifted && w.cons.Has(continuityName(ends[0])) {
				marks.Set(uint(ends[0]))
				lifted = true
			}

			next, err := w.loopContinuation(ends, free, visited, seg)
			if err != nil {
				return err
			}
			if next < 0 {
				loops++
				break
			}
			seg = next
		}
	}

	if loops > 0 {
		logger.Logger().Debug().Int("loops", loops).Msg("free-segment loops resolved")
	}
	return nil
}

// loopContinuation finds the unvisited free segment extending the walk
// through either endpoint of the current segment. It returns -1 when the
// loop is closed and ErrLoopCrossing when more than one continuation
// exists where exactly one is expected.
func (w *Wireframe) loopContinuation(ends [2]int, free, visited *bitset.BitSet, cur int) (int, error) {
	for _, node := range ends {
		var found []int
		for _, s := range w.distinctConnected(node) {
			if free.Test(uint(s)) && !visited.Test(uint(s)) {
				found = append(found, s)
			}
		}
		if len(found) > 1 {
			return -1, fmt.Errorf("%w: %d continuations from segment %d at node %d: %v",
				ErrLoopCrossing, len(found), cur, node, found)
		}
		if len(found) == 1 {
			visited.Set(uint(found[0]))
			return found[0], nil
		}
	}
	return -1, nil
}
