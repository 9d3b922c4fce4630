package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/combicalc/internal/combinatorics"
	"github.com/agbru/combicalc/internal/config"
	"github.com/agbru/combicalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration: the
// requested coefficient, the timeout and the environment.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Calculating %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), BinomialLabel(cfg.N, cfg.R), ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	if k, err := combinatorics.Normalize(cfg.N, cfg.R); err == nil && k != cfg.R {
		fmt.Fprintf(out, "Symmetry: computed as %s%s%s.\n",
			ui.ColorCyan(), BinomialLabel(cfg.N, k), ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single algorithm vs comparison).
//
// Parameters:
//   - calculators: The calculators that will be executed. Must not be empty.
//   - out: The writer for standard output.
func PrintExecutionMode(calculators []combinatorics.Calculator, out io.Writer) {
	var modeDesc string
	if len(calculators) > 1 {
		modeDesc = fmt.Sprintf("Parallel comparison of %d algorithms", len(calculators))
	} else {
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s algorithm",
			ui.ColorGreen(), calculators[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
