package combinatorics

import (
	"context"
	"fmt"
	"math/big"
)

// Multiplicative computes C(n, k) with the iterative multiply-then-divide
// loop. It is the default strategy: O(k) big multiplications, cancellable.
type Multiplicative struct{}

// Name returns the strategy description.
func (m *Multiplicative) Name() string {
	return "Multiplicative (O(k), exact division)"
}

// CalculateCore runs the multiplicative loop.
func (m *Multiplicative) CalculateCore(ctx context.Context, reporter ProgressCallback, n, k int64) (*big.Int, error) {
	return binomialMultiplicative(ctx, reporter, n, k)
}

// Recursive computes C(n, k) by direct recursion on C(n-1, k-1). Its depth
// is min(r, n-r), bounded by MaxRecursionDepth.
type Recursive struct{}

// Name returns the strategy description.
func (rc *Recursive) Name() string {
	return "Recursive (symmetry-reduced)"
}

// CalculateCore runs the recursion, rejecting inputs deeper than
// MaxRecursionDepth.
func (rc *Recursive) CalculateCore(ctx context.Context, _ ProgressCallback, n, k int64) (*big.Int, error) {
	if k > MaxRecursionDepth {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", ErrRecursionLimit, k, MaxRecursionDepth)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return binomialRecursive(n, k), nil
}

// Pascal computes C(n, k) by building rows of Pascal's triangle with
// additions only, keeping columns 0..k. It uses no division at all, which
// makes it an independent cross-check of the multiplicative strategies.
type Pascal struct{}

// Name returns the strategy description.
func (p *Pascal) Name() string {
	return "Pascal Triangle (O(n*k), additions only)"
}

// CalculateCore builds rows 1..n of the truncated triangle.
func (p *Pascal) CalculateCore(ctx context.Context, reporter ProgressCallback, n, k int64) (*big.Int, error) {
	if n > MaxPascalN {
		return nil, fmt.Errorf("%w: n=%d exceeds %d for the Pascal strategy", ErrRecursionLimit, n, MaxPascalN)
	}

	row := make([]*big.Int, k+1)
	row[0] = big.NewInt(1)
	for j := int64(1); j <= k; j++ {
		row[j] = new(big.Int)
	}

	for i := int64(1); i <= n; i++ {
		// Right to left so row[j-1] still holds the previous row.
		for j := min(i, k); j >= 1; j-- {
			row[j].Add(row[j], row[j-1])
		}

		if i%ProgressReportInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if reporter != nil {
				reporter(float64(i) / float64(n))
			}
		}
	}
	return row[k], nil
}

// Stdlib delegates to big.Int.Binomial. It serves as a reference oracle.
type Stdlib struct{}

// Name returns the strategy description.
func (s *Stdlib) Name() string {
	return "math/big Binomial (reference)"
}

// CalculateCore calls big.Int.Binomial. The call itself is not cancellable,
// so n is capped at MaxStdlibN.
func (s *Stdlib) CalculateCore(ctx context.Context, _ ProgressCallback, n, k int64) (*big.Int, error) {
	if n > MaxStdlibN {
		return nil, fmt.Errorf("%w: n=%d exceeds %d for the math/big strategy", ErrRecursionLimit, n, MaxStdlibN)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return new(big.Int).Binomial(n, k), nil
}
