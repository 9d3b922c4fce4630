package combinatorics

import (
	"context"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// allStrategies returns the strategies compiled into every build.
func allStrategies() []coreCalculator {
	return []coreCalculator{
		&Multiplicative{},
		&Recursive{},
		&Pascal{},
		&Stdlib{},
	}
}

// TestBinomialSymmetry_PropertyBased verifies C(n, r) = C(n, n-r) for every
// strategy on random inputs.
func TestBinomialSymmetry_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, strategy := range allStrategies() {
		calc := NewCalculator(strategy)
		properties.Property(calc.Name()+" is symmetric", prop.ForAll(
			func(n, r int64) bool {
				if r > n {
					r = n
				}
				a, err := calc.Calculate(context.Background(), nil, 0, n, r)
				if err != nil {
					t.Logf("C(%d, %d): %v", n, r, err)
					return false
				}
				b, err := calc.Calculate(context.Background(), nil, 0, n, n-r)
				if err != nil {
					t.Logf("C(%d, %d): %v", n, n-r, err)
					return false
				}
				return a.Cmp(b) == 0
			},
			gen.Int64Range(0, 400),
			gen.Int64Range(0, 400),
		))
	}

	properties.TestingRun(t)
}

// TestPascalIdentity_PropertyBased verifies
//
//	C(n, r) = C(n-1, r-1) + C(n-1, r)  for 0 < r < n
func TestPascalIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Binomial satisfies Pascal's identity", prop.ForAll(
		func(n, r int64) bool {
			r = 1 + r%(n-1)
			c, err := Binomial(n, r)
			if err != nil {
				return false
			}
			left, err := Binomial(n-1, r-1)
			if err != nil {
				return false
			}
			right, err := Binomial(n-1, r)
			if err != nil {
				return false
			}
			return c.Cmp(new(big.Int).Add(left, right)) == 0
		},
		gen.Int64Range(2, 2000),
		gen.Int64Range(0, 2000),
	))

	properties.TestingRun(t)
}

// TestStrategiesAgree_PropertyBased cross-checks every strategy against
// Binomial on random inputs.
func TestStrategiesAgree_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, strategy := range allStrategies() {
		calc := NewCalculator(strategy)
		properties.Property(calc.Name()+" agrees with Binomial", prop.ForAll(
			func(n, r int64) bool {
				r %= n + 1
				want, err := Binomial(n, r)
				if err != nil {
					return false
				}
				got, err := calc.Calculate(context.Background(), nil, 0, n, r)
				if err != nil {
					return false
				}
				return got.Cmp(want) == 0
			},
			gen.Int64Range(0, 1500),
			gen.Int64Range(0, 1500),
		))
	}

	properties.TestingRun(t)
}

// TestReduceFraction_PropertyBased verifies, for nonzero a and b, that the
// reduced pair is coprime, preserves the value (n'*b == d'*a) and is a fixed
// point of a second reduction.
func TestReduceFraction_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	nonZero := gen.Int64Range(-1_000_000_000, 1_000_000_000).SuchThat(func(v int64) bool { return v != 0 })

	properties.Property("reduced fraction is coprime", prop.ForAll(
		func(a, b int64) bool {
			n, d, err := ReduceFraction(a, b)
			return err == nil && GCD(n, d) == 1
		},
		nonZero, nonZero,
	))

	properties.Property("reduction preserves the value", prop.ForAll(
		func(a, b int64) bool {
			n, d, err := ReduceFraction(a, b)
			if err != nil {
				return false
			}
			// |a|, |b| < 2^30 so both products fit in int64.
			return n*b == d*a
		},
		nonZero, nonZero,
	))

	properties.Property("reduction is idempotent", prop.ForAll(
		func(a, b int64) bool {
			n, d, err := ReduceFraction(a, b)
			if err != nil {
				return false
			}
			n2, d2, err := ReduceFraction(n, d)
			return err == nil && n == n2 && d == d2
		},
		nonZero, nonZero,
	))

	properties.Property("signs stay on their operand", prop.ForAll(
		func(a, b int64) bool {
			n, d, err := ReduceFraction(a, b)
			return err == nil && (n < 0) == (a < 0) && (d < 0) == (b < 0)
		},
		nonZero, nonZero,
	))

	properties.Property("big variant agrees with int64 variant", prop.ForAll(
		func(a, b int64) bool {
			n, d, err := ReduceFraction(a, b)
			if err != nil {
				return false
			}
			bn, bd, err := ReduceFractionBig(big.NewInt(a), big.NewInt(b))
			return err == nil && bn.Int64() == n && bd.Int64() == d
		},
		gen.Int64(), nonZero,
	))

	properties.TestingRun(t)
}
