package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies ANSI color codes for error output. A nil
// ColorProvider prints without colors.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

type noColors struct{}

func (noColors) Red() string    { return "" }
func (noColors) Yellow() string { return "" }
func (noColors) Reset() string  { return "" }

// HandleCalculationError prints a user-facing message for a failed
// calculation and returns the matching exit code.
//
// Parameters:
//   - err: The error returned by the calculation. nil means success.
//   - duration: How long the calculation ran before failing.
//   - out: The writer for the error message.
//   - colors: Color codes for the message. May be nil.
//
// Returns:
//   - int: ExitSuccess, ExitErrorTimeout, ExitErrorCanceled,
//     ExitErrorConfig or ExitErrorGeneric.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = noColors{}
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	switch {
	case IsContextError(err):
		if !errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
			return ExitErrorCanceled
		}
		limit := ""
		var timeoutErr TimeoutError
		if errors.As(err, &timeoutErr) && timeoutErr.Limit > 0 {
			limit = fmt.Sprintf(" (%s)", timeoutErr.Limit)
		}
		fmt.Fprintf(out, "%sStatus: Failure (Timeout). The execution limit%s was reached%s.%s\n",
			colors.Red(), limit, msgSuffix, colors.Reset())
		return ExitErrorTimeout
	case IsInputError(err):
		fmt.Fprintf(out, "%sStatus: Invalid input. %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	default:
		fmt.Fprintf(out, "%sStatus: Failure. An unexpected error occurred: %v%s\n",
			colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
