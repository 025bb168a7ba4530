// Package constraint defines the core types and sentinel errors for the
// linear constraint collection.
package constraint

import "errors"

// Sentinel errors for constraint operations.
var (
	// ErrSetSize indicates a non-positive segment count at Set construction.
	ErrSetSize = errors.New("constraint: segment count must be positive")
	// ErrEmptyName indicates a constraint with an empty name.
	ErrEmptyName = errors.New("constraint: name must not be empty")
	// ErrDuplicateName indicates a constraint name that already exists.
	ErrDuplicateName = errors.New("constraint: name already exists")
	// ErrEmptyRow indicates a constraint with no coefficient terms.
	ErrEmptyRow = errors.New("constraint: coefficient row must not be empty")
	// ErrSegmentIndex indicates a term referencing a segment out of range.
	ErrSegmentIndex = errors.New("constraint: segment index out of range")
	// ErrUnknownName indicates a lookup or removal of an absent constraint.
	ErrUnknownName = errors.New("constraint: no constraint with that name")
)

// Kind tags the role of a constraint within the wireframe.
type Kind uint8

const (
	// Continuity enforces Kirchhoff-style current conservation at a node.
	Continuity Kind = iota
	// Segment pins one segment's current to zero at the user's request.
	Segment
	// ImplicitSegment pins one segment's current to zero because every
	// alternative current path at one of its nodes is already blocked.
	ImplicitSegment
	// PoloidalCurrent fixes the net poloidal current crossing the inboard
	// midplane (sets the toroidal field).
	PoloidalCurrent
	// ToroidalCurrent fixes the net toroidal current crossing a symmetry
	// plane (sets the poloidal dipole moment).
	ToroidalCurrent
	// Custom marks a caller-supplied constraint of no predefined role.
	Custom
)

// String returns the canonical lower-case tag for k.
func (k Kind) String() string {
	switch k {
	case Continuity:
		return "continuity"
	case Segment:
		return "segment"
	case ImplicitSegment:
		return "implicit_segment"
	case PoloidalCurrent:
		return "poloidal_current"
	case ToroidalCurrent:
		return "toroidal_current"
	default:
		return "custom"
	}
}

// PinsSegment reports whether k is one of the two segment-pinning kinds.
func (k Kind) PinsSegment() bool {
	return k == Segment || k == ImplicitSegment
}

// Term is one sparse coefficient: Coeff multiplies the current of segment Seg.
type Term struct {
	Seg   int
	Coeff float64
}

// Row is a sparse coefficient row, the left-hand side of one equation.
type Row []Term

// Dense expands the row into a dense coefficient slice of length n.
// Coefficients of repeated segment indices accumulate.
func (r Row) Dense(n int) []float64 {
	out := make([]float64, n)
	for _, t := range r {
		out[t.Seg] += t.Coeff
	}
	return out
}

// Dot evaluates the row against a dense current vector x.
func (r Row) Dot(x []float64) float64 {
	var sum float64
	for _, t := range r {
		sum += t.Coeff * x[t.Seg]
	}
	return sum
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	return append(Row(nil), r...)
}

// Constraint is one named linear equality Row·x = RHS over segment currents.
type Constraint struct {
	Name string
	Kind Kind
	Row  Row
	RHS  float64
}

// PinnedSegment returns the segment pinned to zero by a Segment or
// ImplicitSegment constraint. ok is false for every other kind.
func (c *Constraint) PinnedSegment() (seg int, ok bool) {
	if !c.Kind.PinsSegment() || len(c.Row) != 1 {
		return 0, false
	}
	return c.Row[0].Seg, true
}
