// Package config defines the application configuration, parses it from
// command-line flags and applies COMBICALC_* environment overrides.
package config

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/combicalc/internal/errors"
)

// EnvPrefix is the prefix of every environment variable read by the
// application.
const EnvPrefix = "COMBICALC_"

// Supported operations.
const (
	OperationBinomial = "binomial"
	OperationReduce   = "reduce"
)

// Defaults used when neither a flag nor an environment variable is set.
const (
	DefaultN        = 52
	DefaultR        = 5
	DefaultAlgo     = "all"
	DefaultTimeout  = time.Minute
	DefaultLogLevel = "warn"
)

// completionShells lists the shells accepted by -completion.
var completionShells = []string{"bash", "zsh", "fish"}

// AppConfig aggregates all configuration parameters of the application.
type AppConfig struct {
	// Operation selects the computation: "binomial" or "reduce".
	Operation string
	// N is the size of the set for the binomial coefficient.
	N int64
	// R is the size of the subset for the binomial coefficient.
	R int64
	// Numerator and Denominator are the decimal fraction operands. They are
	// kept as strings so that values beyond int64 are accepted.
	Numerator   string
	Denominator string
	// Algo is the binomial strategy key, or "all" to compare every strategy.
	Algo string
	// Timeout bounds the duration of a run.
	Timeout time.Duration
	// ShowValue prints the computed value.
	ShowValue bool
	// Verbose prints the full value without truncation.
	Verbose bool
	// Details prints digit and bit statistics.
	Details bool
	// Quiet prints the bare result only, for scripting.
	Quiet bool
	// OutputFile is the path where the result is saved, if set.
	OutputFile string
	// MetricsFile is the path of the Prometheus textfile written after the run.
	MetricsFile string
	// LogLevel is the zerolog level name.
	LogLevel string
	// NoColor disables colors.
	NoColor bool
	// Interactive starts the REPL.
	Interactive bool
	// Completion is the shell for which to print a completion script.
	Completion string
}

// Validate checks the semantic consistency of the configuration. Argument
// ranges of the binomial coefficient are left to the calculators, which
// report them as invalid input.
//
// Parameters:
//   - availableAlgos: The registered strategy keys.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Completion != "" {
		if !slices.Contains(completionShells, c.Completion) {
			return apperrors.NewConfigError("unsupported shell for completion: %q (supported: %s)",
				c.Completion, strings.Join(completionShells, ", "))
		}
		return nil
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be strictly positive, got %s", c.Timeout)
	}
	if c.Algo != DefaultAlgo && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: %q (available: %s, all)",
			c.Algo, strings.Join(availableAlgos, ", "))
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("-quiet and -verbose cannot be used together")
	}

	switch c.Operation {
	case OperationBinomial:
	case OperationReduce:
		if c.Interactive {
			return nil
		}
		if _, _, err := c.Fraction(); err != nil {
			return err
		}
	default:
		return apperrors.NewConfigError("unknown operation: %q (expected %s or %s)",
			c.Operation, OperationBinomial, OperationReduce)
	}
	return nil
}

// Fraction parses the fraction operands.
//
// Returns:
//   - *big.Int: The numerator.
//   - *big.Int: The denominator.
//   - error: A ValidationError if an operand is missing or not an integer.
func (c AppConfig) Fraction() (*big.Int, *big.Int, error) {
	num, err := parseInteger("num", c.Numerator)
	if err != nil {
		return nil, nil, err
	}
	den, err := parseInteger("den", c.Denominator)
	if err != nil {
		return nil, nil, err
	}
	return num, den, nil
}

func parseInteger(field, s string) (*big.Int, error) {
	if s == "" {
		return nil, apperrors.ValidationError{Field: field, Message: "is required for the reduce operation"}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, apperrors.ValidationError{Field: field, Message: fmt.Sprintf("%q is not a decimal integer", s)}
	}
	return v, nil
}

// ParseConfig parses the command-line arguments into an AppConfig, applies
// environment overrides for flags that were not set explicitly, and validates
// the result.
//
// Parameters:
//   - programName: The name used in usage messages.
//   - args: The command-line arguments, without the program name.
//   - errorWriter: Where usage and parse errors are written.
//   - availableAlgos: The registered strategy keys.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when -h was given, a parse error, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errorWriter, "Computes binomial coefficients C(n, r) and reduces fractions.\n\n")
		fmt.Fprintf(errorWriter, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEvery option can also be set with a %s<NAME> environment variable.\n", EnvPrefix)
	}

	config := AppConfig{}
	fs.StringVar(&config.Operation, "op", OperationBinomial, "Operation: binomial or reduce.")
	fs.Int64Var(&config.N, "n", DefaultN, "Size of the set for C(n, r).")
	fs.Int64Var(&config.R, "r", DefaultR, "Size of the subset for C(n, r).")
	fs.StringVar(&config.Numerator, "num", "", "Numerator of the fraction to reduce (any size).")
	fs.StringVar(&config.Denominator, "den", "", "Denominator of the fraction to reduce (any size).")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo,
		fmt.Sprintf("Binomial strategy: %s, or all to compare them.", strings.Join(availableAlgos, ", ")))
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run.")
	fs.BoolVar(&config.ShowValue, "calculate", false, "Display the computed value.")
	fs.BoolVar(&config.ShowValue, "c", false, "Shorthand for -calculate.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Display the full value without truncation.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&config.Details, "details", false, "Display digit and bit statistics.")
	fs.BoolVar(&config.Details, "d", false, "Shorthand for -details.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result, for scripting.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for -quiet.")
	fs.StringVar(&config.OutputFile, "output", "", "Save the result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for -output.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn or error.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the interactive mode.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh or fish.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)
	config.Operation = strings.ToLower(config.Operation)
	config.Algo = strings.ToLower(config.Algo)

	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}
