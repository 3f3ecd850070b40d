package utils

import (
	"fmt"
	"time"
)

// FormatTime formats a duration as a short human readable value. Durations
// under a minute keep two decimals.
func FormatTime(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	total := int64(d / time.Second)
	days, hours := total/86400, total/3600%24
	minutes, seconds := total/60%60, total%60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd:%dh:%dm:%ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh:%dm:%ds", hours, minutes, seconds)
	default:
		return fmt.Sprintf("%dm:%ds", minutes, seconds)
	}
}
