package combinatorics

// ─────────────────────────────────────────────────────────────────────────────
// Strategy Limits
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxRecursionDepth bounds the depth of the recursive strategy. The depth
	// of C(n, r) is min(r, n-r), so any request above this bound is rejected
	// with ErrRecursionLimit rather than growing the goroutine stack without
	// limit.
	MaxRecursionDepth = 10_000

	// MaxPascalN bounds n for the Pascal triangle strategy, whose cost is
	// O(n * min(r, n-r)) big-integer additions.
	MaxPascalN = 5_000

	// MaxStdlibN bounds n for the math/big strategy. big.Int.Binomial cannot
	// be interrupted, so larger inputs would outlive any timeout.
	MaxStdlibN = 100_000
)

// ─────────────────────────────────────────────────────────────────────────────
// Progress Reporting Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// ProgressReportInterval is the number of loop iterations between two
	// progress reports. Each report also checks the context for cancellation.
	ProgressReportInterval = 256
)
