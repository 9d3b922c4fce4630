package combinatorics

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// Binomial returns C(n, r), the number of ways to choose r items out of n.
//
// It uses the multiplicative identity C(n, r) = n/r * C(n-1, r-1) unrolled
// into a loop, together with the symmetry C(n, r) = C(n, n-r). Every step
// multiplies before it divides, so every intermediate value is itself a
// binomial coefficient and every division is exact.
//
// Parameters:
//   - n: The size of the set. Must be non-negative.
//   - r: The size of the subset. Must satisfy 0 <= r <= n.
//
// Returns:
//   - *big.Int: The binomial coefficient.
//   - error: An error wrapping ErrInvalidArgument if the arguments are out of range.
func Binomial(n, r int64) (*big.Int, error) {
	k, err := Normalize(n, r)
	if err != nil {
		return nil, err
	}
	return binomialMultiplicative(context.Background(), nil, n, k)
}

// Normalize validates binomial arguments and applies the symmetry reduction.
// It returns the k to use in place of r: n-r when r > n/2, r otherwise.
//
// Parameters:
//   - n: The size of the set.
//   - r: The size of the subset.
//
// Returns:
//   - int64: The reduced subset size, with 0 <= k <= n/2.
//   - error: An error wrapping ErrInvalidArgument if n < 0, r < 0 or r > n.
func Normalize(n, r int64) (int64, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w: n must be non-negative, got %d", ErrInvalidArgument, n)
	case r < 0:
		return 0, fmt.Errorf("%w: r must be non-negative, got %d", ErrInvalidArgument, r)
	case r > n:
		return 0, fmt.Errorf("%w: r=%d exceeds n=%d", ErrInvalidArgument, r, n)
	}
	if r > n/2 {
		return n - r, nil
	}
	return r, nil
}

// binomialMultiplicative computes C(n, k) for an already normalized k.
// After step i the accumulator holds C(n-k+i, i).
func binomialMultiplicative(ctx context.Context, reporter ProgressCallback, n, k int64) (*big.Int, error) {
	acc := big.NewInt(1)
	factor := new(big.Int)
	base := n - k

	for i := int64(1); i <= k; i++ {
		acc.Mul(acc, factor.SetInt64(base+i))
		acc.Quo(acc, factor.SetInt64(i))

		if i%ProgressReportInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if reporter != nil {
				reporter(float64(i) / float64(k))
			}
		}
	}
	return acc, nil
}

// binomialRecursive follows the recursive definition directly:
//
//	C(n, 0) = 1
//	C(n, r) = C(n, n-r)               when r > n/2
//	C(n, r) = n * C(n-1, r-1) / r
//
// Depth is bounded by the caller through MaxRecursionDepth.
func binomialRecursive(n, r int64) *big.Int {
	if r == 0 {
		return big.NewInt(1)
	}
	if r > n/2 {
		return binomialRecursive(n, n-r)
	}
	result := binomialRecursive(n-1, r-1)
	result.Mul(result, big.NewInt(n))
	return result.Quo(result, big.NewInt(r))
}

// BinomialInt64 returns C(n, r) as an int64.
//
// The multiply-then-divide loop runs on uint64 with a 128-bit intermediate
// product, so no intermediate value is truncated. The intermediates are
// C(n-k+i, i) for i <= k, none of which exceeds the final result, so an
// overflow during the loop always means the result itself does not fit.
//
// Returns:
//   - int64: The binomial coefficient.
//   - error: An error wrapping ErrInvalidArgument for out-of-range arguments,
//     or ErrOverflow if the result exceeds math.MaxInt64.
func BinomialInt64(n, r int64) (int64, error) {
	k, err := Normalize(n, r)
	if err != nil {
		return 0, err
	}

	acc := uint64(1)
	base := uint64(n - k)
	for i := uint64(1); i <= uint64(k); i++ {
		hi, lo := bits.Mul64(acc, base+i)
		if hi >= i {
			return 0, fmt.Errorf("%w: C(%d, %d) does not fit in int64", ErrOverflow, n, r)
		}
		acc, _ = bits.Div64(hi, lo, i)
	}
	if acc > math.MaxInt64 {
		return 0, fmt.Errorf("%w: C(%d, %d) does not fit in int64", ErrOverflow, n, r)
	}
	return int64(acc), nil
}
