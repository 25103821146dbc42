// Package pixel converts timeline instants and durations into vertical
// pixel offsets for the rendering layer. Pure functions, no state.
package pixel

import (
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/constants"
)

// TimeToPixels maps an instant to its pixel offset from startHour.
// The fractional hour of day (minutes and seconds included) is offset
// by startHour and scaled; instants before startHour clamp to 0.
func TimeToPixels(t time.Time, startHour int, pixelsPerHour float64) float64 {
	if pixelsPerHour <= 0 {
		pixelsPerHour = constants.DefaultPixelsPerHour
	}
	hourOfDay := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	px := (hourOfDay - float64(startHour)) * pixelsPerHour
	if px < 0 {
		return 0
	}
	return px
}

// DurationToPixels maps a duration in seconds to a pixel height, with a
// minimum so zero-length events stay visible and clickable.
func DurationToPixels(seconds int64, pixelsPerHour float64) float64 {
	if pixelsPerHour <= 0 {
		pixelsPerHour = constants.DefaultPixelsPerHour
	}
	px := float64(seconds) / 3600 * pixelsPerHour
	if px < constants.MinEventPixels {
		return constants.MinEventPixels
	}
	return px
}
