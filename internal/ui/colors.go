package ui

// The functions below return the escape code of the active theme for a
// given role, or an empty string when colors are disabled.

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed is used for errors.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen is used for successful outcomes.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow is used for warnings and durations.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue is used for algorithm names.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta is used for operands.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan is used for secondary values such as paths and sizes.
func ColorCyan() string { return GetCurrentTheme().Secondary }

// ColorBold starts bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline starts underlined text.
func ColorUnderline() string { return GetCurrentTheme().Underline }
