// Package logging provides a unified logging interface for the calculator.
// It abstracts the underlying logging implementation (zerolog), so that
// components log structured fields without depending on the backend.
package logging
