package orchestration

import (
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/agbru/combicalc/internal/combinatorics"
)

// CalculationResult encapsulates the outcome of a single strategy run.
// It is the shared domain type between orchestration and presentation layers.
type CalculationResult struct {
	// Name is the description of the strategy used.
	Name string
	// Result is the computed coefficient. It is nil if an error occurred.
	Result *big.Int
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// N and R are the binomial arguments, used for labels.
	N, R      int64
	Verbose   bool
	Details   bool
	ShowValue bool
}

// ProgressReporter defines the interface for displaying calculation progress.
// It keeps the orchestration layer free of presentation concerns.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from calculators.
	//   - numCalculators: The number of concurrent calculators being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan combinatorics.ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan combinatorics.ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan combinatorics.ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan combinatorics.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting calculation results.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentResult displays the final calculation result.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles calculation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
