package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/combicalc/internal/combinatorics"
	apperrors "github.com/agbru/combicalc/internal/errors"
	"github.com/agbru/combicalc/internal/format"
	"github.com/agbru/combicalc/internal/metrics"
	"github.com/agbru/combicalc/internal/orchestration"
	"github.com/agbru/combicalc/internal/sysmon"
	"github.com/agbru/combicalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps DisplayProgress to show a spinner and progress bar.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing calculations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan combinatorics.ProgressUpdate, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with
// algorithm names, durations, and status. Padding is computed manually
// because ANSI color codes defeat tabwriter alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := len("Algorithm")
	maxDurationLen := len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Name))
		maxDurationLen = max(maxDurationLen, len([]rune(format.FormatExecutionDuration(res.Duration))))
	}

	fmt.Fprintf(out, "%sAlgorithm%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Algorithm")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len([]rune(duration))),
			status)
	}
}

// padRight appends length spaces to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final calculation result.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Result ---%s\n", ui.ColorBold(), ui.ColorReset())
	DisplayResult(result.Result, BinomialLabel(opts.N, opts.R), result.Duration, opts.Verbose, opts.Details, opts.ShowValue, out)
}

// FormatDuration formats a duration for display.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError handles calculation errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider adapts the ui theme to apperrors.ColorProvider.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

// Red returns the error color.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset code.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// DisplayMemoryStats shows memory statistics after a calculation.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:      %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Obtained from OS: %s\n", format.FormatBytes(snap.Sys))
	fmt.Fprintf(out, "  GC cycles:        %d\n", snap.NumGC)
	fmt.Fprintf(out, "  GC pause total:   %.2fms\n", float64(snap.PauseTotalNs)/1e6)
}

// DisplayHostStats shows the host load sampled after a calculation.
func DisplayHostStats(stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nHost Stats:\n")
	fmt.Fprintf(out, "  CPU usage:        %.1f%%\n", stats.CPUPercent)
	fmt.Fprintf(out, "  Memory usage:     %.1f%% of %s\n", stats.MemPercent, format.FormatBytes(stats.TotalMemory))
}
