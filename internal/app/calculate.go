package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/combicalc/internal/cli"
	apperrors "github.com/agbru/combicalc/internal/errors"
	"github.com/agbru/combicalc/internal/logging"
	"github.com/agbru/combicalc/internal/metrics"
	"github.com/agbru/combicalc/internal/orchestration"
	"github.com/agbru/combicalc/internal/sysmon"
)

// runCalculate orchestrates the computation of C(n, r) with the selected
// strategies.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)
	if len(calculatorsToRun) == 0 {
		fmt.Fprintf(a.ErrWriter, "Error: no algorithm matches %q\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calculatorsToRun, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	a.Logger.Debug("binomial run started",
		logging.Int64("n", a.Config.N), logging.Int64("r", a.Config.R),
		logging.String("algo", a.Config.Algo))

	results := orchestration.ExecuteCalculations(ctx, calculatorsToRun, a.Config.N, a.Config.R,
		progressReporter, progressOut,
		orchestration.WithLogger(a.Logger), orchestration.WithMetrics(a.Metrics))
	a.markTimeouts(ctx, results)

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		ShowValue:  a.Config.ShowValue,
		Details:    a.Config.Details,
	}

	exitCode := a.analyzeResultsWithOutput(results, outputCfg, out)
	if exitCode == apperrors.ExitSuccess && a.Config.Details && !a.Config.Quiet {
		cli.DisplayMemoryStats(metrics.ReadMemory(), out)
		cli.DisplayHostStats(sysmon.Sample(context.WithoutCancel(ctx)), out)
	}
	return exitCode
}

// markTimeouts replaces deadline errors with a TimeoutError carrying the
// configured limit.
func (a *Application) markTimeouts(ctx context.Context, results []orchestration.CalculationResult) {
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return
	}
	for i := range results {
		if errors.Is(results[i].Err, context.DeadlineExceeded) {
			results[i].Err = apperrors.TimeoutError{Operation: orchestration.OperationBinomial, Limit: a.Config.Timeout}
		}
	}
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.CalculationResult, outputCfg cli.OutputConfig, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}

	if outputCfg.Quiet {
		bestResult := findBestResult(results)
		if bestResult == nil {
			return presenter.HandleError(orchestration.FirstError(results), 0, a.ErrWriter)
		}
		if orchestration.HasMismatch(results) {
			fmt.Fprintln(a.ErrWriter, "Error: the algorithms returned inconsistent results")
			return apperrors.ExitErrorMismatch
		}
		cli.DisplayQuietResult(out, bestResult.Result)
		if err := a.saveResultIfNeeded(bestResult, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	presOpts := orchestration.PresentationOptions{
		N:         a.Config.N,
		R:         a.Config.R,
		Verbose:   a.Config.Verbose,
		Details:   a.Config.Details,
		ShowValue: a.Config.ShowValue,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, out)

	// AnalyzeComparisonResults sorted the results, fastest success first.
	if bestResult := findBestResult(results); bestResult != nil && exitCode == apperrors.ExitSuccess {
		if err := a.saveResultIfNeeded(bestResult, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		cli.DisplaySaved(out, outputCfg)
	}

	return exitCode
}

func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var bestResult *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}

func (a *Application) saveResultIfNeeded(res *orchestration.CalculationResult, cfg cli.OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	label := cli.BinomialLabel(a.Config.N, a.Config.R)
	if err := cli.WriteResultToFile(res.Result, label, res.Duration, res.Name, cfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		a.Logger.Error("result export failed", err, logging.String("path", cfg.OutputFile))
		return err
	}
	return nil
}
