// Package app wires configuration, calculators and presentation together and
// dispatches to the requested mode.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/combicalc/internal/cli"
	"github.com/agbru/combicalc/internal/combinatorics"
	"github.com/agbru/combicalc/internal/config"
	apperrors "github.com/agbru/combicalc/internal/errors"
	"github.com/agbru/combicalc/internal/logging"
	"github.com/agbru/combicalc/internal/metrics"
	"github.com/agbru/combicalc/internal/sysmon"
	"github.com/agbru/combicalc/internal/ui"
)

// Application represents the combicalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   combinatorics.CalculatorFactory
	Logger    logging.Logger
	Metrics   *metrics.Metrics
	In        io.Reader
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f combinatorics.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets the reader used by the interactive mode.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument list, program name first.
//   - errWriter: Where usage, parse errors and diagnostics are written.
//   - opts: Optional overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp for -h, or a parse or configuration error.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = combinatorics.GlobalFactory()
	}

	programName := "combicalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}
	app.Metrics = metrics.New()
	return app, nil
}

// Run executes the application based on the configured mode.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	zerolog.SetGlobalLevel(logging.ParseLevel(a.Config.LogLevel))
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Interactive {
		return a.runREPL(out)
	}

	var exitCode int
	switch a.Config.Operation {
	case config.OperationReduce:
		exitCode = a.runReduce(ctx, out)
	default:
		exitCode = a.runCalculate(ctx, out)
	}
	return a.finish(ctx, exitCode)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive mode on a.In.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Timeout:     a.Config.Timeout,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// finish records end-of-run metrics and writes the metrics textfile when
// requested. A failed export turns a successful run into a generic error.
func (a *Application) finish(ctx context.Context, exitCode int) int {
	if a.Metrics == nil {
		return exitCode
	}
	if exitCode == apperrors.ExitErrorMismatch {
		a.Metrics.IncMismatch()
	}
	a.Metrics.ObserveMemory(metrics.ReadMemory())

	if a.Config.MetricsFile == "" {
		return exitCode
	}
	host := sysmon.Sample(ctx)
	a.Metrics.ObserveHost(host.CPUPercent, host.MemPercent)
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.Logger.Error("metrics export failed", err, logging.String("path", a.Config.MetricsFile))
		fmt.Fprintf(a.ErrWriter, "Error writing metrics: %v\n", err)
		if exitCode == apperrors.ExitSuccess {
			return apperrors.ExitErrorGeneric
		}
		return exitCode
	}
	a.Logger.Debug("metrics exported", logging.String("path", a.Config.MetricsFile))
	return exitCode
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
