package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Index Limits
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxIndex is the largest n for which F(n) fits in a uint64.
	// F(93) = 12200160415121876738; F(94) overflows.
	MaxIndex = 93

	// DefaultIndex is the index computed by the demo run.
	DefaultIndex = 10

	// SpinnerIndex is the index from which the naive recursion takes long
	// enough (tens of milliseconds and up) to warrant a terminal spinner.
	SpinnerIndex = 32

	// SlowIndex is the index above which the naive recursion runs for
	// seconds or more on typical hardware. Runs above it log a warning.
	SlowIndex = 40
)
