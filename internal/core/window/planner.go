package window

import (
	"github.com/penwyp/go-activity-timeline/internal/core/constants"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// DayCountBucket is the discretized number of days kept resident for a
// zoom level. Only three sizes exist; zoom changes that stay inside one
// bucket are ignored by the navigation layer.
type DayCountBucket int

const (
	BucketNear DayCountBucket = 3
	BucketMid  DayCountBucket = 5
	BucketFar  DayCountBucket = 7
)

// DetermineDayCount maps a continuous zoom level in (0,1] to the number
// of days that must be loaded. Higher zoom means less visible time, so
// fewer days.
func DetermineDayCount(zoom float64) int {
	return int(ZoomBucket(zoom))
}

// ZoomBucket returns the day-count bucket for a zoom level. The same
// thresholds drive both window sizing and change suppression, so a
// pinch gesture that never crosses a threshold never resizes the window.
func ZoomBucket(zoom float64) DayCountBucket {
	switch {
	case zoom >= constants.ZoomThresholdNear:
		return BucketNear
	case zoom >= constants.ZoomThresholdMid:
		return BucketMid
	default:
		return BucketFar
	}
}

// ComputeCandidateDates returns the full candidate pool around center:
// offsets -3..+3, filtered to dates not after today. The pool is what
// the store always fetches, regardless of the active subset.
func ComputeCandidateDates(center, today model.CalendarDate) []model.CalendarDate {
	candidates := make([]model.CalendarDate, 0, constants.MaxWindowDays)
	for offset := -constants.CandidateOffset; offset <= constants.CandidateOffset; offset++ {
		d := center.AddDays(offset)
		if d.After(today) {
			continue
		}
		candidates = append(candidates, d)
	}
	return candidates
}

// ComputeActiveDates selects the daysNeeded-wide slice of candidates
// centered on center. When center is not among the candidates the first
// daysNeeded candidates are used. The slice is clamped at the pool
// boundaries while keeping its requested length whenever enough
// candidates exist.
func ComputeActiveDates(candidates []model.CalendarDate, center model.CalendarDate, daysNeeded int) []model.CalendarDate {
	if len(candidates) == 0 || daysNeeded <= 0 {
		return nil
	}
	if daysNeeded > len(candidates) {
		daysNeeded = len(candidates)
	}

	centerIdx := -1
	for i, d := range candidates {
		if d == center {
			centerIdx = i
			break
		}
	}
	if centerIdx < 0 {
		return candidates[:daysNeeded]
	}

	start := centerIdx - daysNeeded/2
	if start < 0 {
		start = 0
	}
	if start+daysNeeded > len(candidates) {
		start = len(candidates) - daysNeeded
	}
	return candidates[start : start+daysNeeded]
}
