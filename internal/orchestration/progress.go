package orchestration

import (
	"github.com/agbru/combicalc/internal/combinatorics"
	"github.com/agbru/combicalc/internal/format"
)

// ProgressAggregator folds per-calculator progress updates into an average.
type ProgressAggregator struct {
	state          *format.ProgressState
	numCalculators int
}

// NewProgressAggregator creates a new aggregator for the given number
// of calculators. Returns nil if numCalculators <= 0.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:          format.NewProgressState(numCalculators),
		numCalculators: numCalculators,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// CalculatorIndex is the index of the calculator that sent the update.
	CalculatorIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all calculators.
	AverageProgress float64
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update combinatorics.ProgressUpdate) AggregatedProgress {
	a.state.Update(update.CalculatorIndex, update.Value)
	return AggregatedProgress{
		CalculatorIndex: update.CalculatorIndex,
		Value:           update.Value,
		AverageProgress: a.state.CalculateAverage(),
	}
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// NumCalculators returns the number of calculators being tracked.
func (a *ProgressAggregator) NumCalculators() int {
	return a.numCalculators
}

// IsMultiCalculator returns true if tracking more than one calculator.
func (a *ProgressAggregator) IsMultiCalculator() bool {
	return a.numCalculators > 1
}

// DrainChannel reads all updates from the channel until it is closed.
func DrainChannel(progressChan <-chan combinatorics.ProgressUpdate) {
	for range progressChan {
	}
}
