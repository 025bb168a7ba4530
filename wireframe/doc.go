// Package wireframe models a discretized toroidal wireframe grid used to
// parameterize candidate coil current distributions on a
// stellarator-symmetric toroidal surface, together with the linear
// constraints that restrict those currents to physically valid
// configurations.
//
// What:
//
//   - New builds the half-period grid topology from a Surface collaborator:
//     nodes on a (nPhi+1)×nTheta lattice, toroidal and poloidal segments,
//     per-node connectivity and per-cell segment/adjacency tables, with
//     index folding at the two symmetry planes.
//   - Continuity constraints (Kirchhoff current conservation) are derived
//     automatically for every node whose continuity is not already
//     guaranteed by the symmetry folding.
//   - Callers pin segments to zero current, prescribe net poloidal or
//     toroidal currents, or add custom rows; implicit zero-current
//     constraints propagate to a fixed point whenever a query needs them.
//   - ConstraintMatrices exports the stacked B·x = d system as dense gonum
//     matrices, optionally dropping redundant continuity rows and pinned
//     columns for rank-sensitive solvers.
//
// Why:
//
//   - Stellarator coil design: a convex or least-squares solver searches the
//     space of segment currents subject to exactly these equality
//     constraints.
//
// Determinism:
//
//   - Constraint rows appear in insertion order; loop discovery scans free
//     segments in ascending id order; no map iteration order leaks into any
//     result.
//
// Cache contract:
//
//   - Implicit zero-current constraints are cached. Every mutation of
//     segment-level constraints invalidates the cache; every reader that
//     depends on implicit consistency refreshes it first. Refreshing is a
//     no-op when clean.
//
// Complexity:
//
//   - New: O(nPhi·nTheta) time and memory.
//   - Implicit refresh: O(nNodes) per pass, bounded passes.
//   - ConstraintMatrices: O(rows·nSegments) for the dense assembly.
//
// Errors: see errors.go; configuration errors occur only at construction,
// validation errors leave the wireframe unchanged, and structural errors
// (ErrLoopCrossing, ErrDanglingSegment) report a broken modeling assumption
// that must not be ignored.
package wireframe
