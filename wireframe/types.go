// Package wireframe defines the core Wireframe type, the Surface
// collaborator interface and shared constants.
package wireframe

import (
	"github.com/katalvlaran/torwire/constraint"
	"github.com/katalvlaran/torwire/symmetry"
)

// DefaultConstraintTol is the tolerance against which constraint residuals
// are evaluated unless overridden via WithConstraintTol.
const DefaultConstraintTol = 1e-12

// Slots of a node's connected-segment row, in canonical order.
// Incoming segments carry current toward the node, outgoing away from it.
const (
	SlotTorIn = iota
	SlotPolIn
	SlotTorOut
	SlotPolOut
)

// Slots of a cell's bordering-segment row, in canonical order:
// toroidal segment at the lower poloidal angle, poloidal segment at the
// higher toroidal angle, toroidal segment at the higher poloidal angle,
// poloidal segment at the lower toroidal angle.
const (
	CellTorLower = iota
	CellPolHigherTor
	CellTorHigher
	CellPolLowerTor
)

// Slots of a cell's neighbor row, in canonical order: negative poloidal,
// positive toroidal, positive poloidal, negative toroidal direction.
const (
	NbrNegPol = iota
	NbrPosTor
	NbrPosPol
	NbrNegTor
)

// Include selects which pinned segments a query reports.
type Include int

const (
	// IncludeAll reports explicitly and implicitly constrained segments.
	IncludeAll Include = iota
	// IncludeExplicit reports only user-requested segment constraints.
	IncludeExplicit
	// IncludeImplicit reports only system-derived segment constraints.
	IncludeImplicit
)

// Surface supplies the wireframe's geometry. It is an external
// collaborator: the wireframe never computes coordinates itself.
type Surface interface {
	// FieldPeriods returns the number of field periods (nfp ≥ 1).
	FieldPeriods() int

	// StellaratorSymmetric reports whether the surface exhibits
	// stellarator symmetry. Asymmetric surfaces are rejected.
	StellaratorSymmetric() bool

	// NodeGrid returns half-period node coordinates indexed as
	// grid[toroidal][poloidal] with nPhi+1 toroidal rows spanning one half
	// period inclusively and nTheta poloidal columns spanning the full
	// poloidal angle exclusively.
	NodeGrid(nPhi, nTheta int) ([][]symmetry.Vec3, error)
}

// Wireframe is a discretized toroidal wireframe grid with a mutable set of
// linear equality constraints over its segment currents. Topology tables
// are computed once at construction and never mutated; currents and
// constraints change through the public API. A Wireframe is not safe for
// concurrent mutation.
type Wireframe struct {
	nfp    int
	nPhi   int
	nTheta int
	tol    float64

	nNodes       int
	nTorSegments int
	nPolSegments int
	nSegments    int

	// nodes holds the replicated node coordinates, one flat slice per
	// symmetric copy; segSigns holds the matching current signs.
	nodes    [][]symmetry.Vec3
	segSigns []float64

	// torKey/polKey map a (plane, poloidal) position to a segment id, or
	// -1 where no segment originates. segments lists endpoint node ids.
	torKey    [][]int
	polKey    [][]int
	segments  [][2]int
	connected [][4]int

	cellKey       [][4]int
	cellNeighbors [][4]int

	currents []float64
	cons     *constraint.Set

	// implicitsUpdated is the cache-coherence flag for implicit
	// zero-current constraints; see the package documentation.
	implicitsUpdated bool
}

// NFP returns the field-period count.
func (w *Wireframe) NFP() int { return w.nfp }

// NPhi returns the toroidal grid dimension per half period.
func (w *Wireframe) NPhi() int { return w.nPhi }

// NTheta returns the poloidal grid dimension.
func (w *Wireframe) NTheta() int { return w.nTheta }

// NNodes returns the number of half-period nodes, (nPhi+1)·nTheta.
func (w *Wireframe) NNodes() int { return w.nNodes }

// NCells returns the number of grid cells, nPhi·nTheta.
func (w *Wireframe) NCells() int { return w.nPhi * w.nTheta }

// NSegments returns the total segment count, toroidal plus poloidal.
func (w *Wireframe) NSegments() int { return w.nSegments }

// NTorSegments returns the toroidal segment count; toroidal segments
// occupy ids [0, NTorSegments).
func (w *Wireframe) NTorSegments() int { return w.nTorSegments }

// NPolSegments returns the poloidal segment count; poloidal segments
// occupy ids [NTorSegments, NSegments).
func (w *Wireframe) NPolSegments() int { return w.nPolSegments }

// ConstraintTol returns the tolerance used by CheckConstraints.
func (w *Wireframe) ConstraintTol() float64 { return w.tol }

// NodeIndex maps a (toroidal, poloidal) grid position to a node id.
// Valid for i in [0, nPhi] and j in [0, nTheta).
func (w *Wireframe) NodeIndex(i, j int) int { return i*w.nTheta + j }

// SegmentEndpoints returns the two endpoint node ids of segment s within
// the half-period template.
func (w *Wireframe) SegmentEndpoints(s int) (int, int) {
	return w.segments[s][0], w.segments[s][1]
}

// ConnectedSegments returns the 4 segment ids touching node n in slot
// order {SlotTorIn, SlotPolIn, SlotTorOut, SlotPolOut}. Entries may
// coincide at symmetry-plane fold points.
func (w *Wireframe) ConnectedSegments(n int) [4]int { return w.connected[n] }

// NodeCopies returns the node coordinates of every symmetric copy; the
// outer index is the copy (2·nfp of them), the inner index the node id.
// The returned slices alias internal immutable storage.
func (w *Wireframe) NodeCopies() [][]symmetry.Vec3 { return w.nodes }

// SegmentSigns returns the per-copy current sign convention (+1/−1),
// aligned with NodeCopies.
func (w *Wireframe) SegmentSigns() []float64 {
	return append([]float64(nil), w.segSigns...)
}

// Currents returns the live segment current vector, one value per segment
// shared across all symmetric copies via SegmentSigns. Callers may mutate
// it directly; CheckConstraints validates the result.
func (w *Wireframe) Currents() []float64 { return w.currents }
