package dashboard

import (
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// GestureEvent is what the rendering/gesture collaborator emits on
// every pan or zoom. VisibleRange and Zoom are optional.
type GestureEvent struct {
	Playhead     time.Time
	VisibleRange *model.TimeWindow
	Zoom         *float64
}

// View is the state pushed to the rendering collaborator: the loaded
// day records, the combined time range, the globally sorted screenshot
// list, and the navigation state it needs to lay out the axis.
type View struct {
	LoadedDays     map[model.CalendarDate]*model.DayRecord
	TimeRange      model.TimeWindow
	AllScreenshots []model.Screenshot
	IsLoadingAny   bool
	LoadingDays    map[model.CalendarDate]struct{}
	CenterDate     model.CalendarDate
	ZoomLevel      float64
	// TargetPlayhead is set while an explicit navigation wants the
	// renderer to animate toward an instant; the renderer acknowledges
	// with ClearTargetPlayhead on the engine.
	TargetPlayhead *time.Time
}

// Renderer is the rendering/gesture collaborator. Rendering itself is
// out of the engine's hands; it only pushes views and consumes gestures.
type Renderer interface {
	// Gestures returns the channel of pan/zoom events.
	Gestures() <-chan GestureEvent
	// Render presents the current view.
	Render(view View)
	// Close cleans up renderer resources.
	Close() error
}

// ChangeMonitor reports dates whose capture files changed on disk.
type ChangeMonitor interface {
	// Events returns the channel of changed dates.
	Events() <-chan model.CalendarDate
	// Close stops monitoring.
	Close() error
}
