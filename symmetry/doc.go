// Package symmetry expands one half-period of a stellarator-symmetric node
// set into the full torus.
//
// What:
//
//   - Replicate produces the 2·nfp symmetric copies of a half-period node
//     array: the raw half-period, its stellarator reflection, and the
//     field-period rotations of both.
//   - Each copy carries a current sign (+1 or −1); segment currents reverse
//     direction in reflected copies, so one scalar current per segment
//     suffices for the whole torus.
//
// Why:
//
//   - Coil optimization: a solver works on a single half-period worth of
//     degrees of freedom; visualization and field evaluation need the full
//     torus view.
//
// Conventions:
//
//   - Copy 0 is the input half-period, sign +1.
//   - Copy 1 is the stellarator reflection (x, y, z) → (x, −y, −z), sign −1.
//   - Copies 2i and 2i+1 (i = 1..nfp−1) are copies 0 and 1 rotated by
//     2πi/nfp about the toroidal (z) axis, signs +1 and −1.
//
// Complexity:
//
//   - Replicate: O(nfp·N) time and memory for N input nodes.
//
// Errors:
//
//   - ErrFieldPeriods: nfp is not a positive integer.
//   - ErrNoNodes: the input node set is empty.
package symmetry
