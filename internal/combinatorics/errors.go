package combinatorics

import "errors"

// Error kinds returned by this package. Callers match them with errors.Is;
// the returned errors wrap them with the offending values.
var (
	// ErrInvalidArgument is returned for binomial arguments outside
	// 0 <= r <= n, and for nil big.Int operands.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is returned when a fraction has a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned by fixed-width functions whose exact result
	// does not fit in the result type.
	ErrOverflow = errors.New("integer overflow")

	// ErrRecursionLimit is returned by bounded strategies when the request
	// exceeds their supported input range.
	ErrRecursionLimit = errors.New("recursion limit exceeded")
)
