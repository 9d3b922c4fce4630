package combinatorics

import (
	"fmt"
	"math"
	"math/big"
)

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
//
// The result is unsigned because GCD(math.MinInt64, 0) is 2^63, which has no
// int64 representation.
func GCD(a, b int64) uint64 {
	x, y := magnitude(a), magnitude(b)
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// magnitude returns |x| without overflowing on math.MinInt64.
func magnitude(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// ReduceFraction reduces numerator/denominator to lowest terms by dividing
// both by their greatest common divisor.
//
// Signs stay on the operand that carried them: (-9, 12) reduces to (-3, 4)
// and (9, -12) to (3, -4). A zero numerator reduces to (0, 1) or (0, -1)
// following the sign of the denominator.
//
// Parameters:
//   - numerator: The numerator of the fraction.
//   - denominator: The denominator of the fraction. Must be non-zero.
//
// Returns:
//   - int64: The reduced numerator.
//   - int64: The reduced denominator.
//   - error: An error wrapping ErrDivisionByZero if denominator is zero.
func ReduceFraction(numerator, denominator int64) (int64, int64, error) {
	if denominator == 0 {
		return 0, 0, fmt.Errorf("%w: %d/0", ErrDivisionByZero, numerator)
	}

	g := GCD(numerator, denominator)
	switch {
	case g == 1:
		return numerator, denominator, nil
	case g > math.MaxInt64:
		// Only reachable when denominator is math.MinInt64 and numerator is
		// either 0 or math.MinInt64.
		return sign64(numerator), -1, nil
	}
	return numerator / int64(g), denominator / int64(g), nil
}

func sign64(x int64) int64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// ReduceFractionBig is the arbitrary-precision counterpart of ReduceFraction,
// with the same sign conventions. The inputs are not modified; the results
// are newly allocated.
//
// Returns:
//   - *big.Int: The reduced numerator.
//   - *big.Int: The reduced denominator.
//   - error: An error wrapping ErrInvalidArgument for nil operands, or
//     ErrDivisionByZero if denominator is zero.
func ReduceFractionBig(numerator, denominator *big.Int) (*big.Int, *big.Int, error) {
	if numerator == nil || denominator == nil {
		return nil, nil, fmt.Errorf("%w: nil fraction operand", ErrInvalidArgument)
	}
	if denominator.Sign() == 0 {
		return nil, nil, fmt.Errorf("%w: %s/0", ErrDivisionByZero, numerator)
	}

	g := new(big.Int).GCD(nil, nil, numerator, denominator)
	num := new(big.Int).Quo(numerator, g)
	den := new(big.Int).Quo(denominator, g)
	return num, den, nil
}
