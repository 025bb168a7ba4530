// Package constraint provides a named, insertion-ordered collection of
// linear equality constraints over wireframe segment currents.
//
// What:
//
//   - Constraint couples a unique name, a typed Kind, a sparse coefficient
//     Row and a scalar right-hand side, encoding one equation row·x = rhs
//     over the segment current vector x.
//   - Set stores constraints under unique names while preserving insertion
//     order, so exported constraint matrices have a stable, reproducible
//     row order.
//
// Why:
//
//   - Downstream least-squares and convex solvers consume the stacked rows
//     as a dense matrix; insertion order determines row order, and the Kind
//     tag lets redundancy analysis treat continuity and pinned-segment rows
//     specially without string comparison.
//
// Conventions:
//
//   - Rows are sparse: continuity and pinned-segment constraints carry at
//     most 4 nonzero terms regardless of grid size. Dense rows are only
//     materialized at export time.
//   - A Set is bound to a fixed segment count at construction; every added
//     term index is validated against it.
//
// Complexity:
//
//   - Add/Remove/Has/Get: O(1) amortized (Remove is O(n) in the order
//     slice).
//   - Names/ByKind: O(n).
//
// Errors:
//
//   - ErrSetSize: non-positive segment count at construction.
//   - ErrEmptyName: a constraint with an empty name.
//   - ErrDuplicateName: a constraint name is already present.
//   - ErrEmptyRow: a constraint with no coefficient terms.
//   - ErrSegmentIndex: a term references a segment outside [0, nSegments).
//   - ErrUnknownName: removal or lookup of an absent constraint.
package constraint
