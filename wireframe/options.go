package wireframe

// Option configures wireframe construction via functional arguments.
type Option func(*config)

// config stores the effective construction configuration.
type config struct {
	tol float64
}

// defaultConfig returns the documented defaults.
func defaultConfig() config {
	return config{tol: DefaultConstraintTol}
}

// WithConstraintTol sets the tolerance against which constraint equations
// are evaluated by CheckConstraints. Must be positive; validated in New.
func WithConstraintTol(tol float64) Option {
	return func(c *config) { c.tol = tol }
}

// MatrixOption configures ConstraintMatrices via functional arguments.
type MatrixOption func(*matrixConfig)

// matrixConfig stores the effective export configuration.
// Defaults mirror the documented behavior: redundant continuity rows are
// removed, pinned columns are kept, no crossing-free assumption is made.
type matrixConfig struct {
	removeRedundancies        bool
	removeConstrainedSegments bool
	assumeNoCrossings         bool
}

func defaultMatrixConfig() matrixConfig {
	return matrixConfig{removeRedundancies: true}
}

// KeepRedundancies keeps every constraint row in the export, including
// continuity rows at inactive nodes. Required for correctness checking,
// where every constraint must be considered.
func KeepRedundancies() MatrixOption {
	return func(c *matrixConfig) { c.removeRedundancies = false }
}

// WithoutConstrainedSegments drops the columns of pinned segments and the
// pinned-segment rows themselves, producing the reduced system some
// solvers require.
func WithoutConstrainedSegments() MatrixOption {
	return func(c *matrixConfig) { c.removeConstrainedSegments = true }
}

// AssumeNoCrossings asserts that the free segments form disjoint simple
// loops with no branch points; one additional continuity row per loop is
// then removed, leaving one degree of freedom per loop. The export fails
// with ErrLoopCrossing if the assumption does not hold.
func AssumeNoCrossings() MatrixOption {
	return func(c *matrixConfig) { c.assumeNoCrossings = true }
}
