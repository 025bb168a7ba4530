package constraint

import "fmt"

// Set is an insertion-ordered collection of uniquely named constraints over
// a fixed number of segments. The zero value is not usable; use NewSet.
type Set struct {
	nSegments int
	order     []string
	items     map[string]*Constraint
}

// NewSet creates an empty Set bound to nSegments segment currents.
// Returns ErrSetSize if nSegments is not positive.
func NewSet(nSegments int) (*Set, error) {
	if nSegments < 1 {
		return nil, ErrSetSize
	}
	return &Set{
		nSegments: nSegments,
		items:     make(map[string]*Constraint),
	}, nil
}

// NSegments returns the segment count the Set validates rows against.
func (s *Set) NSegments() int { return s.nSegments }

// Len returns the number of stored constraints.
func (s *Set) Len() int { return len(s.order) }

// Add stores c under its name, validating the name and every row term.
// The row is copied; the caller may reuse its slice. Adding a duplicate
// name fails with ErrDuplicateName and leaves the Set unchanged.
func (s *Set) Add(c Constraint) error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if _, exists := s.items[c.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, c.Name)
	}
	if len(c.Row) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyRow, c.Name)
	}
	for _, t := range c.Row {
		if t.Seg < 0 || t.Seg >= s.nSegments {
			return fmt.Errorf("%w: %q references segment %d of %d",
				ErrSegmentIndex, c.Name, t.Seg, s.nSegments)
		}
	}

	stored := c
	stored.Row = c.Row.Clone()
	s.items[c.Name] = &stored
	s.order = append(s.order, c.Name)

	return nil
}

// Remove deletes the named constraints. If any name is absent the Set is
// left unchanged and ErrUnknownName is returned.
func (s *Set) Remove(names ...string) error {
	for _, name := range names {
		if _, exists := s.items[name]; !exists {
			return fmt.Errorf("%w: %q", ErrUnknownName, name)
		}
	}
	for _, name := range names {
		delete(s.items, name)
	}
	// Compact the order slice in place, preserving insertion order.
	kept := s.order[:0]
	for _, name := range s.order {
		if _, exists := s.items[name]; exists {
			kept = append(kept, name)
		}
	}
	s.order = kept

	return nil
}

// Has reports whether a constraint with the given name exists.
func (s *Set) Has(name string) bool {
	_, exists := s.items[name]
	return exists
}

// Get returns the named constraint. The returned pointer aliases internal
// storage; callers must not mutate it.
func (s *Set) Get(name string) (*Constraint, bool) {
	c, exists := s.items[name]
	return c, exists
}

// Names returns the constraint names in insertion order. The slice is a
// copy and safe to retain.
func (s *Set) Names() []string {
	return append([]string(nil), s.order...)
}

// ByKind returns pointers to all constraints of kind k, in insertion order.
func (s *Set) ByKind(k Kind) []*Constraint {
	var out []*Constraint
	for _, name := range s.order {
		if c := s.items[name]; c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// ForEach calls fn for every constraint in insertion order. fn must not
// add or remove constraints.
func (s *Set) ForEach(fn func(c *Constraint)) {
	for _, name := range s.order {
		fn(s.items[name])
	}
}
