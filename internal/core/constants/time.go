package constants

import "time"

const (
	// Day-window sizing
	MaxWindowDays   = 7
	CandidateOffset = 3 // candidates span center-3 .. center+3

	// Zoom buckets: zoom >= Near loads 3 days, zoom >= Mid loads 5, else 7
	ZoomThresholdNear = 0.9
	ZoomThresholdMid  = 0.4

	// Center-update debouncing
	CenterUpdateCooldown = 500 * time.Millisecond
	PostChangeCooldown   = 1500 * time.Millisecond
	NavigationGraceDelay = 100 * time.Millisecond

	// Reactive center-change triggers
	PlayheadDriftHours  = 12.0
	EdgeLoadBufferHours = 2.0

	// Event grouping gap thresholds
	FocusGapSeconds   = int64(300)
	BrowserGapSeconds = int64(900)
	GitGapSeconds     = int64(900)
	ShellGapSeconds   = int64(600)

	// Pixel mapping
	DefaultPixelsPerHour = 60.0
	MinEventPixels       = 4.0
)
