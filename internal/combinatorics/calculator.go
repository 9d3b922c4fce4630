package combinatorics

import (
	"context"
	"math/big"
)

// ProgressUpdate is a progress notification sent by a running calculator.
type ProgressUpdate struct {
	// CalculatorIndex identifies the calculator when several run at once.
	CalculatorIndex int
	// Value is the normalized progress, from 0.0 to 1.0.
	Value float64
}

// ProgressCallback receives normalized progress values from a strategy.
type ProgressCallback func(progress float64)

// Calculator is the public interface for computing binomial coefficients.
// Implementations validate their arguments and report progress on an
// optional channel.
type Calculator interface {
	// Calculate computes C(n, r).
	//
	// Parameters:
	//   - ctx: The context for cancellation.
	//   - progressChan: Channel for progress updates. May be nil.
	//   - calcIndex: Index reported in each ProgressUpdate.
	//   - n: The size of the set.
	//   - r: The size of the subset.
	//
	// Returns:
	//   - *big.Int: The binomial coefficient.
	//   - error: ErrInvalidArgument, a strategy limit, or a context error.
	Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n, r int64) (*big.Int, error)

	// Name returns a human-readable description of the strategy.
	Name() string
}

// coreCalculator is implemented by each strategy. It receives validated
// arguments where k is already reduced by symmetry (1 <= k <= n/2).
type coreCalculator interface {
	CalculateCore(ctx context.Context, reporter ProgressCallback, n, k int64) (*big.Int, error)
	Name() string
}

// BinomialCalculator adapts a strategy to the Calculator interface. It owns
// argument validation, the trivial k == 0 case and progress delivery, so
// that strategies only implement the arithmetic.
type BinomialCalculator struct {
	core coreCalculator
	key  string
}

// NewCalculator wraps a strategy into a Calculator.
func NewCalculator(core coreCalculator) Calculator {
	return &BinomialCalculator{core: core}
}

// Name returns the name of the wrapped strategy.
func (c *BinomialCalculator) Name() string {
	return c.core.Name()
}

// Key returns the factory key the calculator was registered under, or ""
// for calculators built directly with NewCalculator.
func (c *BinomialCalculator) Key() string {
	return c.key
}

// Keyed is implemented by calculators that know their factory key.
type Keyed interface {
	Key() string
}

// AlgorithmKey returns the short label for calc: its factory key when it has
// one, its Name otherwise.
func AlgorithmKey(calc Calculator) string {
	if k, ok := calc.(Keyed); ok && k.Key() != "" {
		return k.Key()
	}
	return calc.Name()
}

// Calculate validates (n, r), dispatches to the strategy and reports
// completion. Progress updates are dropped rather than blocking when the
// channel is full.
func (c *BinomialCalculator) Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n, r int64) (*big.Int, error) {
	reporter := func(v float64) {
		if progressChan == nil {
			return
		}
		select {
		case progressChan <- ProgressUpdate{CalculatorIndex: calcIndex, Value: v}:
		default:
		}
	}

	k, err := Normalize(n, r)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if k == 0 {
		reporter(1.0)
		return big.NewInt(1), nil
	}

	result, err := c.core.CalculateCore(ctx, reporter, n, k)
	if err != nil {
		return nil, err
	}
	reporter(1.0)
	return result, nil
}
