// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [BinomialLabel].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile], [WriteFractionToFile].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/agbru/combicalc/internal/errors"
	"github.com/agbru/combicalc/internal/format"
	"github.com/agbru/combicalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
	// ShowValue enables the calculated value display.
	ShowValue bool
	// Details shows digit and bit statistics.
	Details bool
}

// BinomialLabel returns the display label of C(n, r).
func BinomialLabel(n, r int64) string {
	return fmt.Sprintf("C(%d, %d)", n, r)
}

// FractionLabel returns the display label of a fraction.
func FractionLabel(num, den *big.Int) string {
	return fmt.Sprintf("%s/%s", num, den)
}

// DisplayResult prints a binomial result.
//
// The bit size is always shown. With details, digit count and scientific
// notation follow. With showValue, the value itself is printed, truncated to
// its first and last DisplayEdges digits beyond TruncationLimit unless
// verbose is set.
//
// Parameters:
//   - result: The computed coefficient.
//   - label: The expression label, such as "C(52, 5)".
//   - duration: The calculation duration.
//   - verbose: Print the full value.
//   - details: Print detailed statistics.
//   - showValue: Print the value.
//   - out: The output writer.
func DisplayResult(result *big.Int, label string, duration time.Duration, verbose, details, showValue bool, out io.Writer) {
	fmt.Fprintf(out, "Result binary size: %s%s%s bits.\n",
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(result.BitLen())), ui.ColorReset())

	resultStr := result.String()
	numDigits := len(resultStr)

	if details {
		fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ui.ColorBold(), ui.ColorReset())
		fmt.Fprintf(out, "Calculation time        : %s%s%s\n",
			ui.ColorGreen(), format.FormatExecutionDuration(duration), ui.ColorReset())
		fmt.Fprintf(out, "Number of digits        : %s%s%s\n",
			ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(numDigits)), ui.ColorReset())
		if numDigits > 6 {
			sci := new(big.Float).SetInt(result).Text('e', 6)
			fmt.Fprintf(out, "Scientific notation     : %s%s%s\n", ui.ColorCyan(), sci, ui.ColorReset())
		}
	}

	if !showValue {
		return
	}

	fmt.Fprintf(out, "\n%s--- Calculated value ---%s\n", ui.ColorBold(), ui.ColorReset())
	if verbose || numDigits <= TruncationLimit {
		fmt.Fprintf(out, "%s = %s%s%s\n", label, ui.ColorGreen(), format.FormatNumberString(resultStr), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%s = %s%s...%s%s (truncated)\n",
		label, ui.ColorGreen(), resultStr[:DisplayEdges], resultStr[numDigits-DisplayEdges:], ui.ColorReset())
	fmt.Fprintf(out, "%sTip: use -v to display the full value.%s\n", ui.ColorYellow(), ui.ColorReset())
}

// DisplayFraction prints a fraction reduction.
//
// Parameters:
//   - num, den: The original operands.
//   - reducedNum, reducedDen: The reduced fraction.
//   - duration: The calculation duration.
//   - details: Also print the common divisor and timing.
//   - out: The output writer.
func DisplayFraction(num, den, reducedNum, reducedDen *big.Int, duration time.Duration, details bool, out io.Writer) {
	fmt.Fprintf(out, "%s%s%s = %s%s%s\n",
		ui.ColorMagenta(), FractionLabel(num, den), ui.ColorReset(),
		ui.ColorGreen(), FractionLabel(reducedNum, reducedDen), ui.ColorReset())

	if !details {
		return
	}
	divisor := new(big.Int).Quo(den, reducedDen)
	divisor.Abs(divisor)
	fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Calculation time        : %s%s%s\n",
		ui.ColorGreen(), format.FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(out, "Greatest common divisor : %s%s%s\n",
		ui.ColorCyan(), format.FormatNumberString(divisor.String()), ui.ColorReset())
	if divisor.IsInt64() && divisor.Int64() == 1 {
		fmt.Fprintf(out, "The fraction was already in lowest terms.\n")
	}
}

// writeRecord writes a result file: a commented metadata header followed by
// the body. Missing parent directories are created.
func writeRecord(path, title string, meta [][2]string, body string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.WrapError(err, "failed to create directory %s", dir)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.WrapError(err, "failed to create output file")
	}
	defer file.Close()

	fmt.Fprintf(file, "# %s\n", title)
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	for _, kv := range meta {
		fmt.Fprintf(file, "# %s: %s\n", kv[0], kv[1])
	}
	fmt.Fprintf(file, "\n%s\n", body)

	if err := file.Close(); err != nil {
		return apperrors.WrapError(err, "failed to write output file")
	}
	return nil
}

// WriteResultToFile writes a binomial result to config.OutputFile. It does
// nothing when no output file is configured.
//
// Parameters:
//   - result: The computed coefficient.
//   - label: The expression label, such as "C(52, 5)".
//   - duration: The calculation duration.
//   - algo: The strategy name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result *big.Int, label string, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	resultStr := result.String()
	return writeRecord(config.OutputFile, "Binomial Coefficient Result", [][2]string{
		{"Algorithm", algo},
		{"Duration", duration.String()},
		{"Expression", label},
		{"Bits", fmt.Sprint(result.BitLen())},
		{"Digits", fmt.Sprint(len(resultStr))},
	}, fmt.Sprintf("%s =\n%s", label, resultStr))
}

// WriteFractionToFile writes a reduced fraction to config.OutputFile. It does
// nothing when no output file is configured.
func WriteFractionToFile(num, den, reducedNum, reducedDen *big.Int, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	return writeRecord(config.OutputFile, "Fraction Reduction Result", [][2]string{
		{"Duration", duration.String()},
		{"Fraction", FractionLabel(num, den)},
	}, fmt.Sprintf("%s =\n%s", FractionLabel(num, den), FractionLabel(reducedNum, reducedDen)))
}

// FormatQuietResult formats a result for quiet mode: the bare decimal value,
// suitable for scripting.
func FormatQuietResult(result *big.Int) string {
	return result.String()
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, result *big.Int) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayResultWithConfig displays a binomial result with the given output
// configuration and saves it when an output file is set.
//
// Parameters:
//   - out: The output writer.
//   - result: The computed coefficient.
//   - label: The expression label.
//   - duration: The calculation duration.
//   - algo: The strategy name.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, result *big.Int, label string, duration time.Duration, algo string, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result)
	} else {
		DisplayResult(result, label, duration, config.Verbose, config.Details, config.ShowValue, out)
	}

	if config.OutputFile == "" {
		return nil
	}
	if err := WriteResultToFile(result, label, duration, algo, config); err != nil {
		return err
	}
	DisplaySaved(out, config)
	return nil
}

// DisplaySaved confirms that a result file was written, unless quiet.
func DisplaySaved(out io.Writer, config OutputConfig) {
	if config.Quiet || config.OutputFile == "" {
		return
	}
	fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
}
