//go:build gmp

package combinatorics

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	optionalStrategies["gmp"] = func() coreCalculator { return &GMP{} }
}

// GMP runs the multiply-then-divide loop on GMP integers. It is only built
// with the "gmp" build tag and requires cgo and libgmp.
type GMP struct{}

// Name returns the strategy description.
func (g *GMP) Name() string {
	return "GMP Multiplicative (cgo)"
}

// CalculateCore runs the multiplicative loop with gmp.Int arithmetic and
// converts the result back to *big.Int.
func (g *GMP) CalculateCore(ctx context.Context, reporter ProgressCallback, n, k int64) (*big.Int, error) {
	acc := gmp.NewInt(1)
	factor := new(gmp.Int)
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

	result, ok := new(big.Int).SetString(acc.String(), 10)
	if !ok {
		return nil, fmt.Errorf("converting GMP result to big.Int")
	}
	return result, nil
}
