package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/combicalc/internal/cli"
	"github.com/agbru/combicalc/internal/combinatorics"
	"github.com/agbru/combicalc/internal/config"
	apperrors "github.com/agbru/combicalc/internal/errors"
	"github.com/agbru/combicalc/internal/logging"
	"github.com/agbru/combicalc/internal/telemetry"
)

// reduceAlgorithm labels fraction reductions in metrics and traces.
const reduceAlgorithm = "euclid"

// runReduce reduces the configured fraction to lowest terms.
func (a *Application) runReduce(ctx context.Context, out io.Writer) int {
	num, den, err := a.Config.Fraction()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	_, span := telemetry.StartCalculation(ctx, config.OperationReduce, reduceAlgorithm)

	start := time.Now()
	reducedNum, reducedDen, err := combinatorics.ReduceFractionBig(num, den)
	duration := time.Since(start)

	if err == nil {
		span.SetAttributes(telemetry.AttrBits.Int(max(reducedNum.BitLen(), reducedDen.BitLen())))
	}
	telemetry.EndSpan(span, err)
	if a.Metrics != nil {
		a.Metrics.ObserveCalculation(config.OperationReduce, reduceAlgorithm, duration, err)
	}

	if err != nil {
		a.Logger.Debug("reduction failed", logging.Err(err))
		errOut := out
		if a.Config.Quiet {
			errOut = a.ErrWriter
		}
		return cli.CLIResultPresenter{}.HandleError(err, 0, errOut)
	}
	a.Logger.Debug("reduction finished",
		logging.String("fraction", cli.FractionLabel(num, den)),
		logging.Int64("duration_us", duration.Microseconds()))

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Details:    a.Config.Details,
	}
	if a.Config.Quiet {
		fmt.Fprintln(out, cli.FractionLabel(reducedNum, reducedDen))
	} else {
		cli.DisplayFraction(num, den, reducedNum, reducedDen, duration, a.Config.Details, out)
	}

	if err := cli.WriteFractionToFile(num, den, reducedNum, reducedDen, duration, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	cli.DisplaySaved(out, outputCfg)
	return apperrors.ExitSuccess
}
