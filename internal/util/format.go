package util

import (
	"fmt"
	"time"
)

// FormatNumber renders a count with a K/M suffix past a thousand.
func FormatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	} else if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

// FormatDuration renders a duration as "2h 5m" or "12m".
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatSeconds renders a second count the same way.
func FormatSeconds(seconds int64) string {
	return FormatDuration(time.Duration(seconds) * time.Second)
}

// FormatClock renders an instant as a wall-clock time in the
// provider's timezone.
func FormatClock(ts int64) string {
	return GetTimeProvider().Format(time.Unix(ts, 0), "15:04:05")
}
