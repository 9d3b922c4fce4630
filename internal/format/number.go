package format

import (
	"fmt"
	"strings"
)

// FormatNumberString inserts thousand separators into a decimal string.
// A leading minus sign is preserved.
//
// Parameters:
//   - s: The decimal representation of an integer.
//
// Returns:
//   - string: The number with commas every three digits.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	var b strings.Builder
	b.Grow(len(prefix) + n + (n-1)/3)
	b.WriteString(prefix)
	first := n % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(s[:first])
	for i := first; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatBytes renders a byte count with a binary unit, e.g. "1.5 MiB".
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
