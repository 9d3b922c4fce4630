// Package ui provides theme and color support for terminal output.
// It defines color schemes, ANSI escape code accessors and the banner shown
// by the interactive mode, so that presentation packages share one palette.
package ui
