package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders the wall time of a calculation. Runs shorter
// than a microsecond print as "< 1µs", so a cached or trivial C(n, 0) never
// shows a misleading zero. Sub-second runs use whole µs or ms, longer ones are
// rounded to the millisecond.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(time.Millisecond).String()
	}
}
