package navigation

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/constants"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/core/window"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// Config carries the tuned navigation heuristics. The defaults are the
// shipped behavior; every threshold is overridable for experimentation.
type Config struct {
	InitialDate string  // day key, empty means today
	InitialZoom float64 // (0,1], 1.0 shows roughly 24h

	PlayheadDriftHours float64
	EdgeBufferHours    float64
	Cooldown           time.Duration
	PostChangeCooldown time.Duration
	GraceDelay         time.Duration

	Location *time.Location
	// Now is the clock used for cooldown decisions. Injectable so the
	// debounce logic is testable without real elapsed time.
	Now func() time.Time
	// Schedule runs f after d. Injectable for the same reason.
	Schedule func(d time.Duration, f func())
}

// Validate fills defaults and rejects a malformed initial date.
func (c *Config) Validate() error {
	if c.InitialZoom <= 0 || c.InitialZoom > 1 {
		c.InitialZoom = 1.0
	}
	if c.PlayheadDriftHours == 0 {
		c.PlayheadDriftHours = constants.PlayheadDriftHours
	}
	if c.EdgeBufferHours == 0 {
		c.EdgeBufferHours = constants.EdgeLoadBufferHours
	}
	if c.Cooldown == 0 {
		c.Cooldown = constants.CenterUpdateCooldown
	}
	if c.PostChangeCooldown == 0 {
		c.PostChangeCooldown = constants.PostChangeCooldown
	}
	if c.GraceDelay == 0 {
		c.GraceDelay = constants.NavigationGraceDelay
	}
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.Now == nil {
		c.Now = util.GetTimeProvider().Now
	}
	if c.Schedule == nil {
		c.Schedule = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	if c.InitialDate != "" {
		if _, err := model.ParseCalendarDate(c.InitialDate); err != nil {
			return fmt.Errorf("initial date: %w", err)
		}
	}
	return nil
}

// UpdateResult tells the caller what a playhead update decided.
type UpdateResult struct {
	CenterChanged bool
	ZoomChanged   bool
}

// Controller arbitrates center-date changes from three competing
// sources: playhead drift, visible-range edges approaching the loaded
// boundary, and explicit navigation. Reactive updates are debounced
// with a wall-clock cooldown; zoom bucket changes bypass it because
// they represent a step change in how many days must be resident.
type Controller struct {
	cfg Config

	mu                sync.Mutex
	centerDate        model.CalendarDate
	zoomLevel         float64
	zoomBucket        window.DayCountBucket
	navInProgress     bool
	lastUpdateAt      time.Time
	lastCenterChanged bool
	visibleRange      *model.TimeWindow
	targetPlayhead    *time.Time
}

// NewController builds a controller from cfg. Validate must have been
// called (New calls it again defensively and propagates its error).
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	center := model.DateOf(cfg.Now().In(cfg.Location))
	if cfg.InitialDate != "" {
		center = model.CalendarDate(cfg.InitialDate)
	}
	return &Controller{
		cfg:        cfg,
		centerDate: center,
		zoomLevel:  cfg.InitialZoom,
		zoomBucket: window.ZoomBucket(cfg.InitialZoom),
	}, nil
}

// CenterDate returns the current center of the loaded day window.
func (c *Controller) CenterDate() model.CalendarDate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.centerDate
}

// ZoomLevel returns the last adopted zoom level.
func (c *Controller) ZoomLevel() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoomLevel
}

// TargetPlayhead returns the instant the rendering layer should animate
// the playhead toward, if a navigation is pending.
func (c *Controller) TargetPlayhead() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.targetPlayhead == nil {
		return time.Time{}, false
	}
	return *c.targetPlayhead, true
}

// NavigationInProgress reports whether an explicit navigation currently
// owns the center date.
func (c *Controller) NavigationInProgress() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navInProgress
}

// UpdateFromPlayhead reacts to a pan/zoom gesture. playhead is the
// user's focus instant; visibleRange and zoom are optional and cached
// when present. Edge-load takes precedence over playhead drift: when
// zoomed far out the visible boundary reaches the fetched edge long
// before the playhead drifts 12 hours from center.
func (c *Controller) UpdateFromPlayhead(playhead time.Time, visibleRange *model.TimeWindow, zoom *float64) UpdateResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result UpdateResult
	now := c.cfg.Now()

	// Bucket changes bypass the cooldown entirely.
	if zoom != nil {
		if bucket := window.ZoomBucket(*zoom); bucket != c.zoomBucket {
			c.zoomBucket = bucket
			c.zoomLevel = *zoom
			result.ZoomChanged = true
			util.LogDebug(fmt.Sprintf("Zoom bucket changed to %d days (zoom=%.2f)", int(bucket), *zoom))
		}
	}

	if c.navInProgress {
		return result
	}

	if visibleRange != nil {
		vr := *visibleRange
		c.visibleRange = &vr
	}

	cooldown := c.cfg.Cooldown
	if c.lastCenterChanged {
		cooldown = c.cfg.PostChangeCooldown
	}
	if now.Sub(c.lastUpdateAt) < cooldown {
		return result
	}
	// Past the long cooldown without another change; fall back to baseline.
	c.lastCenterChanged = false

	today := model.DateOf(now.In(c.cfg.Location))
	center := c.centerDate
	noon := center.Noon(c.cfg.Location)
	hoursFromCenter := math.Abs(playhead.Sub(noon).Hours())

	edgeTarget, needsEdgeLoad := c.edgeLoadTarget(center, noon)

	switch {
	case needsEdgeLoad && edgeTarget != center && !edgeTarget.After(today):
		c.adoptCenter(edgeTarget, now)
		result.CenterChanged = true
		util.LogDebug(fmt.Sprintf("Edge load: center %s -> %s", center, edgeTarget))
	case hoursFromCenter > c.cfg.PlayheadDriftHours && model.DateOf(playhead.In(c.cfg.Location)) != center:
		next := model.DateOf(playhead.In(c.cfg.Location))
		c.adoptCenter(next, now)
		result.CenterChanged = true
		util.LogDebug(fmt.Sprintf("Playhead drift %.1fh: center %s -> %s", hoursFromCenter, center, next))
	}
	return result
}

// edgeLoadTarget checks whether the cached visible range is brushing
// against the boundary of the loaded window. The end-side target is the
// day before the visible end so the shifted window stays centered
// instead of flush against the new edge.
func (c *Controller) edgeLoadTarget(center model.CalendarDate, noon time.Time) (model.CalendarDate, bool) {
	if c.visibleRange == nil {
		return "", false
	}
	halfWindow := time.Duration(float64(c.zoomBucket)*12) * time.Hour
	loadedStart := noon.Add(-halfWindow)
	loadedEnd := noon.Add(halfWindow)
	buffer := time.Duration(c.cfg.EdgeBufferHours * float64(time.Hour))

	visStart := time.Unix(c.visibleRange.Start, 0).In(c.cfg.Location)
	visEnd := time.Unix(c.visibleRange.End, 0).In(c.cfg.Location)

	if visStart.Before(loadedStart.Add(buffer)) {
		return model.DateOf(visStart), true
	}
	if visEnd.After(loadedEnd.Add(-buffer)) {
		return model.DateOf(visEnd).AddDays(-1), true
	}
	return "", false
}

func (c *Controller) adoptCenter(date model.CalendarDate, now time.Time) {
	c.centerDate = date
	c.lastUpdateAt = now
	c.lastCenterChanged = true
}

// GoToDate jumps the window to an explicit date. The rendering layer
// animates the playhead toward noon of that date and acknowledges with
// ClearTargetPlayhead when done.
func (c *Controller) GoToDate(date model.CalendarDate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target := date.Noon(c.cfg.Location)
	c.navInProgress = true
	c.adoptCenter(date, c.cfg.Now())
	c.targetPlayhead = &target
	util.LogInfo(fmt.Sprintf("Navigating to %s", date))
}

// GoToToday jumps to today with the playhead at the current instant.
func (c *Controller) GoToToday() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.cfg.Now()
	target := now.In(c.cfg.Location)
	c.navInProgress = true
	c.adoptCenter(model.DateOf(target), now)
	c.targetPlayhead = &target
}

// ClearTargetPlayhead is the rendering layer's acknowledgement that its
// navigation animation finished. The target clears immediately; the
// in-progress flag clears after a short grace delay to absorb late
// reactive events still in flight from the transition.
func (c *Controller) ClearTargetPlayhead() {
	c.mu.Lock()
	c.targetPlayhead = nil
	c.mu.Unlock()

	c.cfg.Schedule(c.cfg.GraceDelay, func() {
		c.mu.Lock()
		c.navInProgress = false
		c.mu.Unlock()
	})
}
