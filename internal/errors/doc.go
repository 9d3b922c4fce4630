// Package apperrors holds the error kinds combicalc reports to the user and
// the exit code each one maps to.
//
// Strategy failures arrive wrapped in CalculationError, deadlines surface as
// TimeoutError, and bad flags or operands as ConfigError or ValidationError.
// Every wrapper keeps its cause reachable through errors.Is and errors.As.
package apperrors
