package orchestration

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/combicalc/internal/combinatorics"
	apperrors "github.com/agbru/combicalc/internal/errors"
	"github.com/agbru/combicalc/internal/logging"
	"github.com/agbru/combicalc/internal/metrics"
	"github.com/agbru/combicalc/internal/telemetry"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces dropped updates when the UI is slow.
const ProgressBufferMultiplier = 5

// OperationBinomial is the operation label used for logs, metrics and spans.
const OperationBinomial = "binomial"

// Option configures ExecuteCalculations.
type Option func(*executeOptions)

type executeOptions struct {
	logger  logging.Logger
	metrics *metrics.Metrics
}

// WithLogger logs each strategy run at debug level.
func WithLogger(l logging.Logger) Option {
	return func(o *executeOptions) { o.logger = l }
}

// WithMetrics records each strategy run in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *executeOptions) { o.metrics = m }
}

// ExecuteCalculations runs the calculators concurrently on C(n, r).
//
// One goroutine per calculator runs under an errgroup. Calculator errors are
// stored in the result rather than returned to the group, so one failing
// strategy does not cancel the others. A single goroutine consumes progress
// updates.
//
// The call returns as soon as ctx is done, even if a calculator ignores
// cancellation: unfinished slots then hold ctx.Err() and any late result is
// discarded.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - calculators: The calculators to execute.
//   - n, r: The binomial arguments.
//   - progressReporter: The progress display (NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//   - opts: Optional logger and metrics.
//
// Returns:
//   - []CalculationResult: One result per calculator, in input order.
func ExecuteCalculations(ctx context.Context, calculators []combinatorics.Calculator, n, r int64, progressReporter ProgressReporter, out io.Writer, opts ...Option) []CalculationResult {
	o := executeOptions{logger: logging.NopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		mu        sync.Mutex
		results   = make([]CalculationResult, len(calculators))
		finished  = make([]bool, len(calculators))
		abandoned bool
	)

	// Workers never send on displayChan directly, so it can be closed while
	// an abandoned worker is still running.
	bufSize := len(calculators) * ProgressBufferMultiplier
	workerChan := make(chan combinatorics.ProgressUpdate, bufSize)
	displayChan := make(chan combinatorics.ProgressUpdate, bufSize)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, displayChan, len(calculators), out)

	startTime := time.Now()
	g, groupCtx := errgroup.WithContext(ctx)
	for i, calc := range calculators {
		idx, calculator := i, calc
		g.Go(func() error {
			res := runCalculator(groupCtx, o, calculator, idx, n, r, workerChan)
			mu.Lock()
			if !abandoned {
				results[idx] = res
				finished[idx] = true
			}
			mu.Unlock()
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	forwardProgress(ctx, done, workerChan, displayChan)

	mu.Lock()
	select {
	case <-done:
	default:
		abandoned = true
		for i, calc := range calculators {
			if finished[i] {
				continue
			}
			o.logger.Debug("calculation abandoned",
				logging.String("algorithm", combinatorics.AlgorithmKey(calc)), logging.Err(ctx.Err()))
			results[i] = CalculationResult{
				Name: calc.Name(), Duration: time.Since(startTime), Err: ctx.Err(),
			}
		}
	}
	mu.Unlock()

	close(displayChan)
	displayWg.Wait()

	return results
}

// runCalculator runs one calculator inside a span and records it.
func runCalculator(ctx context.Context, o executeOptions, calculator combinatorics.Calculator, idx int, n, r int64, progressChan chan<- combinatorics.ProgressUpdate) CalculationResult {
	name := calculator.Name()
	key := combinatorics.AlgorithmKey(calculator)
	spanCtx, span := telemetry.StartCalculation(ctx, OperationBinomial, key,
		telemetry.AttrN.Int64(n), telemetry.AttrR.Int64(r))

	o.logger.Debug("calculation started",
		logging.String("algorithm", key), logging.Int64("n", n), logging.Int64("r", r))

	startTime := time.Now()
	res, err := calculator.Calculate(spanCtx, progressChan, idx, n, r)
	duration := time.Since(startTime)

	if err != nil && !apperrors.IsContextError(err) {
		err = apperrors.CalculationError{Cause: err}
	}
	if res != nil {
		span.SetAttributes(telemetry.AttrBits.Int(res.BitLen()))
	}
	telemetry.EndSpan(span, err)
	recordRun(o, key, res, duration, err)

	return CalculationResult{Name: name, Result: res, Duration: duration, Err: err}
}

// forwardProgress copies updates from in to out until every worker is done
// or ctx ends. Updates are dropped rather than blocking when out is full.
func forwardProgress(ctx context.Context, done <-chan struct{}, in <-chan combinatorics.ProgressUpdate, out chan<- combinatorics.ProgressUpdate) {
	forward := func(u combinatorics.ProgressUpdate) {
		select {
		case out <- u:
		default:
		}
	}
	for {
		select {
		case u := <-in:
			forward(u)
		case <-done:
			for {
				select {
				case u := <-in:
					forward(u)
				default:
					return
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

func recordRun(o executeOptions, key string, res *big.Int, d time.Duration, err error) {
	if err != nil {
		o.logger.Debug("calculation failed", logging.String("algorithm", key), logging.Err(err))
	} else {
		o.logger.Debug("calculation finished",
			logging.String("algorithm", key), logging.Int64("duration_us", d.Microseconds()))
	}
	if o.metrics == nil {
		return
	}
	o.metrics.ObserveCalculation(OperationBinomial, key, d, err)
	if err == nil && res != nil {
		o.metrics.ObserveResultBits(key, res.BitLen())
	}
}

// AnalyzeComparisonResults processes the results from one or more strategies.
//
// It sorts the results by status then duration, checks that every successful
// result agrees, displays the comparison table and finally presents the
// result.
//
// Parameters:
//   - results: The calculation results to analyze. Sorted in place.
//   - opts: Presentation options.
//   - presenter: The result presenter for display formatting.
//   - errHandler: Maps the first error to an exit code when nothing succeeded.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *CalculationResult
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			continue
		}
		successCount++
		if firstValidResult == nil {
			firstValidResult = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the calculation.\n")
		return errHandler.HandleError(FirstError(results), 0, out)
	}

	if HasMismatch(results) {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the algorithms.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}

// FirstError returns the error that explains a failed run. A context error
// wins over strategy failures, since the deadline or signal is what stopped
// the run.
func FirstError(results []CalculationResult) error {
	var first error
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		if apperrors.IsContextError(res.Err) {
			return res.Err
		}
		if first == nil {
			first = res.Err
		}
	}
	return first
}

// HasMismatch reports whether two successful results differ.
func HasMismatch(results []CalculationResult) bool {
	var reference *CalculationResult
	for i := range results {
		if results[i].Err != nil || results[i].Result == nil {
			continue
		}
		if reference == nil {
			reference = &results[i]
			continue
		}
		if results[i].Result.Cmp(reference.Result) != 0 {
			return true
		}
	}
	return false
}
