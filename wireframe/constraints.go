package wireframe

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/torwire/constraint"
)

// Constraint naming follows a fixed scheme so that continuity rows can be
// excluded per node and pinned segments can be located by id.
func continuityName(node int) string { return fmt.Sprintf("continuity_node_%d", node) }

func segmentName(seg int, implicit bool) string {
	if implicit {
		return fmt.Sprintf("implicit_segment_%d", seg)
	}
	return fmt.Sprintf("segment_%d", seg)
}

// Names of the two current-total constraints.
const (
	poloidalCurrentName = "poloidal_current"
	toroidalCurrentName = "toroidal_current"
)

// addContinuityConstraints derives one continuity constraint per node,
// skipping symmetry-plane nodes with j==0 or j >= nTheta/2: current flow
// there is mirrored identically on both sides, so the constraint would be
// linearly dependent on its mirror.
func (w *Wireframe) addContinuityConstraints() error {
	half := w.nTheta / 2
	for i := 0; i <= w.nPhi; i++ {
		onPlane := i == 0 || i == w.nPhi
		for j := 0; j < w.nTheta; j++ {
			if onPlane && (j == 0 || j >= half) {
				continue
			}
			node := w.NodeIndex(i, j)
			cs := w.connected[node]
			err := w.cons.Add(constraint.Constraint{
				Name: continuityName(node),
				Kind: constraint.Continuity,
				Row: constraint.Row{
					{Seg: cs[SlotTorIn], Coeff: -1},
					{Seg: cs[SlotPolIn], Coeff: -1},
					{Seg: cs[SlotTorOut], Coeff: 1},
					{Seg: cs[SlotPolOut], Coeff: 1},
				},
				RHS: 0,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// AddConstraint stores a caller-supplied constraint. Duplicate names and
// invalid rows fail with the Set untouched. Adding a segment-pinning
// constraint invalidates the implicit-constraint cache.
func (w *Wireframe) AddConstraint(c constraint.Constraint) error {
	if err := w.cons.Add(c); err != nil {
		return err
	}
	if c.Kind.PinsSegment() {
		w.implicitsUpdated = false
	}
	return nil
}

// RemoveConstraint deletes the named constraints atomically. Removing any
// segment-pinning constraint invalidates the implicit-constraint cache.
func (w *Wireframe) RemoveConstraint(names ...string) error {
	pins := false
	for _, name := range names {
		if c, ok := w.cons.Get(name); ok && c.Kind.PinsSegment() {
			pins = true
		}
	}
	if err := w.cons.Remove(names...); err != nil {
		return err
	}
	if pins {
		w.implicitsUpdated = false
	}
	return nil
}

// HasConstraint reports whether a constraint with the given name exists.
func (w *Wireframe) HasConstraint(name string) bool { return w.cons.Has(name) }

// Constraint returns the named constraint, if present. The returned
// pointer aliases internal storage; callers must not mutate it.
func (w *Wireframe) Constraint(name string) (*constraint.Constraint, bool) {
	return w.cons.Get(name)
}

// ConstraintNames returns every constraint name in insertion order.
func (w *Wireframe) ConstraintNames() []string { return w.cons.Names() }

// NumConstraints returns the number of stored constraints, implicit ones
// included.
func (w *Wireframe) NumConstraints() int { return w.cons.Len() }

// AddPoloidalCurrentConstraint requires the total poloidal current through
// the inboard midplane to equal current (this effectively sets the
// toroidal magnetic field). A positive poloidal current creates a toroidal
// field in the negative toroidal direction, clockwise when viewed from
// above.
func (w *Wireframe) AddPoloidalCurrentConstraint(current float64) error {
	perSegment := current / float64(2*w.nfp*w.nPhi)
	rhs := perSegment * float64(2*w.nPhi)

	half := w.nTheta / 2
	seg0 := w.nTorSegments + half - 1
	seg1a := seg0 + half
	seg1b := seg1a + 1
	seg2b := w.nSegments - w.nTheta + 1

	row := constraint.Row{{Seg: seg0, Coeff: 1}}
	for s := seg1a; s < w.nSegments; s += w.nTheta {
		row = append(row, constraint.Term{Seg: s, Coeff: 1})
	}
	for s := seg1b; s < seg2b; s += w.nTheta {
		row = append(row, constraint.Term{Seg: s, Coeff: 1})
	}

	return w.cons.Add(constraint.Constraint{
		Name: poloidalCurrentName,
		Kind: constraint.PoloidalCurrent,
		Row:  row,
		RHS:  rhs,
	})
}

// RemovePoloidalCurrentConstraint removes the poloidal current constraint.
func (w *Wireframe) RemovePoloidalCurrentConstraint() error {
	return w.cons.Remove(poloidalCurrentName)
}

// SetPoloidalCurrent replaces any existing poloidal current constraint
// with one requiring the given total.
func (w *Wireframe) SetPoloidalCurrent(current float64) error {
	if w.cons.Has(poloidalCurrentName) {
		if err := w.cons.Remove(poloidalCurrentName); err != nil {
			return err
		}
	}
	return w.AddPoloidalCurrentConstraint(current)
}

// AddToroidalCurrentConstraint requires the total toroidal current through
// a symmetry plane to equal current (this effectively requires a helical
// current distribution when combined with a poloidal current constraint).
// A positive toroidal current creates a dipole moment in the positive z
// direction.
func (w *Wireframe) AddToroidalCurrentConstraint(current float64) error {
	row := make(constraint.Row, w.nTheta)
	for j := 0; j < w.nTheta; j++ {
		row[j] = constraint.Term{Seg: j, Coeff: 1}
	}
	return w.cons.Add(constraint.Constraint{
		Name: toroidalCurrentName,
		Kind: constraint.ToroidalCurrent,
		Row:  row,
		RHS:  current,
	})
}

// RemoveToroidalCurrentConstraint removes the toroidal current constraint.
func (w *Wireframe) RemoveToroidalCurrentConstraint() error {
	return w.cons.Remove(toroidalCurrentName)
}

// SetToroidalCurrent replaces any existing toroidal current constraint
// with one requiring the given total.
func (w *Wireframe) SetToroidalCurrent(current float64) error {
	if w.cons.Has(toroidalCurrentName) {
		if err := w.cons.Remove(toroidalCurrentName); err != nil {
			return err
		}
	}
	return w.AddToroidalCurrentConstraint(current)
}

// checkSegmentRange validates a batch of segment indices up front, so the
// mutators below are all-or-nothing.
func (w *Wireframe) checkSegmentRange(segments []int) error {
	for _, s := range segments {
		if s < 0 || s >= w.nSegments {
			return fmt.Errorf("%w: %d of %d", ErrSegmentRange, s, w.nSegments)
		}
	}
	return nil
}

// addSegmentConstraints pins the given segments to zero current. Explicit
// requests first clear any existing constraint of either kind on each
// segment, preventing duplicate or conflicting rows. The batch is deduped
// up front so a repeated id cannot fail mid-batch with part of it applied.
func (w *Wireframe) addSegmentConstraints(segments []int, implicit bool) error {
	if err := w.checkSegmentRange(segments); err != nil {
		return err
	}
	segments = dedupeSegments(segments)
	if !implicit {
		if err := w.SetSegmentsFree(segments...); err != nil {
			return err
		}
	}
	kind := constraint.Segment
	if implicit {
		kind = constraint.ImplicitSegment
	}
	for _, s := range segments {
		err := w.cons.Add(constraint.Constraint{
			Name: segmentName(s, implicit),
			Kind: kind,
			Row:  constraint.Row{{Seg: s, Coeff: 1}},
			RHS:  0,
		})
		if err != nil {
			return err
		}
	}
	w.implicitsUpdated = false

	return nil
}

// dedupeSegments returns segments with repeated ids dropped, keeping the
// first occurrence of each.
func dedupeSegments(segments []int) []int {
	seen := make(map[int]struct{}, len(segments))
	out := make([]int, 0, len(segments))
	for _, s := range segments {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// AddSegmentConstraints pins the given segments to zero current.
func (w *Wireframe) AddSegmentConstraints(segments ...int) error {
	return w.addSegmentConstraints(segments, false)
}

// RemoveSegmentConstraints removes the explicit zero-current constraints
// on the given segments. Segments without an explicit constraint fail
// with constraint.ErrUnknownName.
func (w *Wireframe) RemoveSegmentConstraints(segments ...int) error {
	if err := w.checkSegmentRange(segments); err != nil {
		return err
	}
	names := make([]string, len(segments))
	for i, s := range segments {
		names[i] = segmentName(s, false)
	}
	if err := w.cons.Remove(names...); err != nil {
		return err
	}
	w.implicitsUpdated = false

	return nil
}

// SetSegmentsConstrained ensures the given segments are pinned to zero
// current, replacing any existing constraint of either kind on them.
func (w *Wireframe) SetSegmentsConstrained(segments ...int) error {
	if err := w.SetSegmentsFree(segments...); err != nil {
		return err
	}
	return w.addSegmentConstraints(segments, false)
}

// SetSegmentsFree ensures the given segments carry no explicit or implicit
// zero-current constraint. Unconstrained segments are left as-is.
func (w *Wireframe) SetSegmentsFree(segments ...int) error {
	if err := w.checkSegmentRange(segments); err != nil {
		return err
	}
	for _, s := range segments {
		switch {
		case w.cons.Has(segmentName(s, false)):
			if err := w.cons.Remove(segmentName(s, false)); err != nil {
				return err
			}
		case w.cons.Has(segmentName(s, true)):
			if err := w.cons.Remove(segmentName(s, true)); err != nil {
				return err
			}
		}
	}
	w.implicitsUpdated = false

	return nil
}

// FreeAllSegments removes every explicit and implicit zero-current
// constraint.
func (w *Wireframe) FreeAllSegments() error {
	var names []string
	w.cons.ForEach(func(c *constraint.Constraint) {
		if c.Kind.PinsSegment() {
			names = append(names, c.Name)
		}
	})
	if len(names) > 0 {
		if err := w.cons.Remove(names...); err != nil {
			return err
		}
	}
	w.implicitsUpdated = false

	return nil
}

// ConstrainedSegments returns the ids of segments pinned to zero current,
// ascending, filtered by include. The implicit-constraint cache is
// refreshed first.
func (w *Wireframe) ConstrainedSegments(include Include) []int {
	w.ensureImplicits()
	return w.constrainedSegments(include)
}

// constrainedSegments lists pinned segments without refreshing the cache.
func (w *Wireframe) constrainedSegments(include Include) []int {
	pinned := bitset.New(uint(w.nSegments))
	if include == IncludeAll || include == IncludeExplicit {
		for _, c := range w.cons.ByKind(constraint.Segment) {
			if s, ok := c.PinnedSegment(); ok {
				pinned.Set(uint(s))
			}
		}
	}
	if include == IncludeAll || include == IncludeImplicit {
		for _, c := range w.cons.ByKind(constraint.ImplicitSegment) {
			if s, ok := c.PinnedSegment(); ok {
				pinned.Set(uint(s))
			}
		}
	}

	out := make([]int, 0, pinned.Count())
	for s, ok := pinned.NextSet(0); ok; s, ok = pinned.NextSet(s + 1) {
		out = append(out, int(s))
	}
	return out
}

// FreeSegments returns the ids of unconstrained segments, ascending. The
// implicit-constraint cache is refreshed first.
func (w *Wireframe) FreeSegments() []int {
	w.ensureImplicits()
	free := w.freeSegmentSet()
	out := make([]int, 0, free.Count())
	for s, ok := free.NextSet(0); ok; s, ok = free.NextSet(s + 1) {
		out = append(out, int(s))
	}
	return out
}

// freeSegmentSet builds the bitset of currently unconstrained segments
// from the stored segment constraints, without refreshing the cache.
func (w *Wireframe) freeSegmentSet() *bitset.BitSet {
	free := bitset.New(uint(w.nSegments))
	for s := 0; s < w.nSegments; s++ {
		free.Set(uint(s))
	}
	for _, kind := range []constraint.Kind{constraint.Segment, constraint.ImplicitSegment} {
		for _, c := range w.cons.ByKind(kind) {
			if s, ok := c.PinnedSegment(); ok {
				free.Clear(uint(s))
			}
		}
	}
	return free
}
