package wireframe

import "errors"

// Sentinel errors for wireframe construction, mutation and export.
var (
	// ErrNilSurface indicates a nil Surface collaborator.
	ErrNilSurface = errors.New("wireframe: surface must not be nil")
	// ErrNotStellaratorSymmetric indicates a surface without stellarator
	// symmetry; such surfaces are not supported.
	ErrNotStellaratorSymmetric = errors.New("wireframe: surface must be stellarator symmetric")
	// ErrGridDimension indicates non-positive or odd nPhi/nTheta.
	ErrGridDimension = errors.New("wireframe: nPhi and nTheta must be positive even integers")
	// ErrNodeGrid indicates a malformed node grid returned by the surface.
	ErrNodeGrid = errors.New("wireframe: surface returned a malformed node grid")
	// ErrTolerance indicates a non-positive constraint tolerance.
	ErrTolerance = errors.New("wireframe: constraint tolerance must be positive")
	// ErrSegmentRange indicates a segment index outside [0, nSegments).
	ErrSegmentRange = errors.New("wireframe: segment index out of range")
	// ErrCurrentsLength indicates a currents vector of the wrong length.
	ErrCurrentsLength = errors.New("wireframe: currents vector length must equal the segment count")
	// ErrConstraintsViolated indicates a proposed current distribution that
	// fails one or more constraint equations.
	ErrConstraintsViolated = errors.New("wireframe: constraints not met for desired currents")
	// ErrDanglingSegment indicates a node left with exactly one free
	// connected segment after implicit propagation; this breaks a hard
	// invariant of the redundancy analysis.
	ErrDanglingSegment = errors.New("wireframe: node has exactly one free connected segment")
	// ErrLoopCrossing indicates a violation of the no-crossings assumption:
	// more than one free continuation was found during the loop walk.
	ErrLoopCrossing = errors.New("wireframe: closed-loop assumption is invalid")
	// ErrNoConstraints indicates an export with every constraint excluded.
	ErrNoConstraints = errors.New("wireframe: no constraints remain after exclusions")
	// ErrTFCoilCount indicates an invalid number of TF coils.
	ErrTFCoilCount = errors.New("wireframe: n_tf must be between 1 and nPhi")
	// ErrPointsPerSegment indicates fewer than 2 collision test points.
	ErrPointsPerSegment = errors.New("wireframe: points per segment must be at least 2")
	// ErrWindowpaneParam indicates invalid windowpane coil counts, sizes or
	// gaps.
	ErrWindowpaneParam = errors.New("wireframe: windowpane sizes and gaps must be positive even integers")
)
