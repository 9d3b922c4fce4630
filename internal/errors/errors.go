package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agbru/combicalc/internal/combinatorics"
)

// Process exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorTimeout  = 2
	ExitErrorMismatch = 3   // strategies disagreed on C(n, r)
	ExitErrorConfig   = 4   // bad flags, bad environment or invalid arithmetic input
	ExitErrorCanceled = 130 // SIGINT
)

// ConfigError reports a flag or environment value the program cannot run with.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError builds a ConfigError from a format string.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError marks a failure raised by a binomial strategy itself, as
// opposed to cancellation. The cause stays reachable through errors.Is, so
// combinatorics.ErrRecursionLimit and friends still match.
type CalculationError struct {
	Cause error
}

func (e CalculationError) Error() string { return e.Cause.Error() }

func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError reports that an operation ran past its configured limit.
// It unwraps to context.DeadlineExceeded.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// ValidationError reports an operand that could not be parsed, such as a
// fraction numerator that is not a decimal integer.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError prefixes err with a formatted message and keeps it in the chain.
// A nil err yields nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err comes from cancellation or a deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInputError reports whether err stems from invalid arithmetic input:
// out-of-range binomial arguments, a zero denominator or an unparsable
// operand. Retrying such input cannot succeed, so it maps to ExitErrorConfig.
func IsInputError(err error) bool {
	var validationErr ValidationError
	return errors.Is(err, combinatorics.ErrInvalidArgument) ||
		errors.Is(err, combinatorics.ErrDivisionByZero) ||
		errors.As(err, &validationErr)
}
