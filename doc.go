// Package torwire parameterizes candidate electromagnetic coil current
// distributions on a stellarator-symmetric toroidal surface as a discretized
// wireframe grid, together with a linear-constraint management layer that
// restricts segment currents to physically valid configurations.
//
// 🚀 What is torwire?
//
//	A self-contained library that brings together:
//		• Grid topology: nodes, toroidal/poloidal segments and cells of a
//		  half-period wireframe, with symmetry-plane index folding
//		• Symmetry replication: reflected and rotated copies of the
//		  half-period node set with per-copy current signs
//		• Constraint management: named, ordered linear equality constraints
//		  (continuity, pinned segments, net poloidal/toroidal currents)
//		• Implicit propagation: automatic zero-current marking of segments
//		  whose every alternative path is already blocked
//		• Redundancy resolution: inactive-node pruning plus one lifted
//		  continuity constraint per independent current loop
//		• Dense export: stacked B·x = d matrices for downstream convex or
//		  least-squares current solvers
//
// ✨ Why choose torwire?
//
//   - Deterministic – constraint rows come out in insertion order, loop
//     discovery scans segments in ascending id order
//   - Validate-then-commit – every mutation either succeeds completely or
//     leaves the wireframe untouched
//   - Pure computation – no I/O, no field evaluation, no plotting; the
//     surface geometry and the optimizer are external collaborators
//
// Packages:
//
//	symmetry/   — half-period → full-torus coordinate replication & signs
//	constraint/ — typed, insertion-ordered linear constraint collection
//	wireframe/  — the toroidal wireframe grid and its query/export API
//	logger/     — shared zerolog-based logging configuration
//
// See the per-package documentation for tutorials and complexity notes.
package torwire
