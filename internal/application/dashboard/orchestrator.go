package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/core/navigation"
	"github.com/penwyp/go-activity-timeline/internal/core/window"
	"github.com/penwyp/go-activity-timeline/internal/data/fetcher"
	"github.com/penwyp/go-activity-timeline/internal/monitoring"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// Orchestrator wires the navigation controller, the window store, the
// file-backed fetcher and the capture watcher into one engine behind
// the renderer interface.
type Orchestrator struct {
	config *Config

	controller   *navigation.Controller
	store        *window.DataWindowStore
	fetcher      *fetcher.DayFileFetcher
	stateManager *StateManager
	watcher      ChangeMonitor
	renderer     Renderer

	dirty chan struct{}
}

// NewOrchestrator creates the engine around a renderer collaborator.
func NewOrchestrator(config *Config, renderer Renderer) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := util.InitializeTimeProvider(config.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize timezone: %w", err)
	}
	tp := util.GetTimeProvider()

	o := &Orchestrator{
		config:       config,
		renderer:     renderer,
		stateManager: NewStateManager(),
		dirty:        make(chan struct{}, 1),
	}

	o.fetcher = fetcher.NewDayFileFetcher(config.CaptureDir)
	o.store = window.NewDataWindowStore(o.fetcher, tp.Location(), tp.Now, o.markDirty)

	controller, err := navigation.NewController(navigation.Config{
		InitialDate: config.InitialDate,
		InitialZoom: config.InitialZoom,
		Location:    tp.Location(),
		Now:         tp.Now,
	})
	if err != nil {
		return nil, err
	}
	o.controller = controller

	return o, nil
}

// markDirty coalesces store change notifications into one pending render.
func (o *Orchestrator) markDirty() {
	select {
	case o.dirty <- struct{}{}:
	default:
	}
}

// Run starts the engine event loop and blocks until ctx is done.
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting activity timeline engine...")
	defer o.Close()

	watcher, err := monitoring.NewCaptureWatcher(o.config.CaptureDir, o.fetcher.Scanner())
	if err != nil {
		return fmt.Errorf("failed to start capture watcher: %w", err)
	}
	o.watcher = watcher

	// Initial window load
	o.store.SetWindow(o.controller.CenterDate(), o.controller.ZoomLevel())
	o.publish()

	renderTicker := time.NewTicker(o.config.RenderInterval)
	defer renderTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down activity timeline engine...")
			return nil

		case <-renderTicker.C:
			o.publish()

		case <-o.dirty:
			o.publish()

		case date, ok := <-o.watcher.Events():
			if !ok {
				return nil
			}
			o.store.MarkDirty(date)
			o.store.RefetchDirty()

		case gesture, ok := <-o.renderer.Gestures():
			if !ok {
				return nil
			}
			o.handleGesture(gesture)
		}
	}
}

// handleGesture feeds a pan/zoom event into the controller and
// re-plans the window when the center or bucket moved.
func (o *Orchestrator) handleGesture(g GestureEvent) {
	result := o.controller.UpdateFromPlayhead(g.Playhead, g.VisibleRange, g.Zoom)
	if result.CenterChanged || result.ZoomChanged {
		o.store.SetWindow(o.controller.CenterDate(), o.controller.ZoomLevel())
		o.publish()
	}
}

// GoToDate jumps the window to an explicit date and starts the
// playhead animation handshake with the renderer.
func (o *Orchestrator) GoToDate(date model.CalendarDate) {
	o.controller.GoToDate(date)
	o.store.SetWindow(o.controller.CenterDate(), o.controller.ZoomLevel())
	o.publish()
}

// GoToToday jumps to today with the playhead at the current instant.
func (o *Orchestrator) GoToToday() {
	o.controller.GoToToday()
	o.store.SetWindow(o.controller.CenterDate(), o.controller.ZoomLevel())
	o.publish()
}

// ClearTargetPlayhead is the renderer's animation acknowledgement.
func (o *Orchestrator) ClearTargetPlayhead() {
	o.controller.ClearTargetPlayhead()
}

// Snapshot returns the current view without rendering, for callers
// embedding the engine without the event loop.
func (o *Orchestrator) Snapshot() View {
	agg := o.store.Snapshot()
	o.stateManager.SetAggregate(agg)
	return o.viewFrom(o.stateManager.AggregateForDisplay())
}

func (o *Orchestrator) publish() {
	o.stateManager.SetAggregate(o.store.Snapshot())
	o.renderer.Render(o.viewFrom(o.stateManager.AggregateForDisplay()))
}

func (o *Orchestrator) viewFrom(agg window.Aggregate) View {
	view := View{
		LoadedDays:     agg.LoadedDays,
		TimeRange:      agg.TimeRange,
		AllScreenshots: agg.AllScreenshots,
		IsLoadingAny:   agg.IsLoadingAny,
		LoadingDays:    agg.LoadingDays,
		CenterDate:     o.controller.CenterDate(),
		ZoomLevel:      o.controller.ZoomLevel(),
	}
	if target, ok := o.controller.TargetPlayhead(); ok {
		view.TargetPlayhead = &target
	}
	return view
}

// Close releases engine resources.
func (o *Orchestrator) Close() {
	if o.watcher != nil {
		o.watcher.Close()
	}
	if o.renderer != nil {
		o.renderer.Close()
	}
}
