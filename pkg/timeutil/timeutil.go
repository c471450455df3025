// Package timeutil provides compact duration formatting in the style of the
// npm debug package (1ms, 2s, 3m, 1h).
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration using the largest unit that keeps the
// value readable, matching the +NNms suffixes printed by npm's debug logger.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return "0ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.0fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.0fm", d.Minutes())
	default:
		return fmt.Sprintf("%.0fh", d.Hours())
	}
}
