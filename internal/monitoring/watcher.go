// Package monitoring watches the capture directory for day-file
// changes so resident day records can be invalidated and refetched.
package monitoring

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// DateResolver maps a changed file path to the calendar date it belongs to.
type DateResolver interface {
	DateForPath(path string) (model.CalendarDate, bool)
}

// CaptureWatcher tails the capture directory and emits the dates whose
// files changed.
type CaptureWatcher struct {
	watcher  *fsnotify.Watcher
	resolver DateResolver
	events   chan model.CalendarDate
	done     chan struct{}
}

// NewCaptureWatcher watches the events and screenshots subdirectories
// of the capture directory.
func NewCaptureWatcher(captureDir string, resolver DateResolver) (*CaptureWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	for _, sub := range []string{"events", "screenshots"} {
		dir := filepath.Join(captureDir, sub)
		if err := watcher.Add(dir); err != nil {
			// A capture layer that has not produced this kind yet is fine.
			util.LogWarn(fmt.Sprintf("Not watching %s: %v", dir, err))
		}
	}

	cw := &CaptureWatcher{
		watcher:  watcher,
		resolver: resolver,
		events:   make(chan model.CalendarDate, 16),
		done:     make(chan struct{}),
	}
	go cw.loop()
	return cw, nil
}

// Events returns the channel of dates whose capture files changed.
func (cw *CaptureWatcher) Events() <-chan model.CalendarDate {
	return cw.events
}

// Close stops watching and releases resources.
func (cw *CaptureWatcher) Close() error {
	close(cw.done)
	return cw.watcher.Close()
}

func (cw *CaptureWatcher) loop() {
	defer close(cw.events)
	for {
		select {
		case <-cw.done:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			date, ok := cw.resolver.DateForPath(event.Name)
			if !ok {
				continue
			}
			util.LogDebug(fmt.Sprintf("Capture file changed: %s (date %s)", event.Name, date))
			select {
			case cw.events <- date:
			case <-cw.done:
				return
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			util.LogWarn(fmt.Sprintf("Watcher error: %v", err))
		}
	}
}
