// Package fetcher is the file-backed fetch collaborator for the window
// store: it resolves a calendar date to the day's capture files and
// parses them on demand.
package fetcher

import (
	"fmt"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/data/parser"
	"github.com/penwyp/go-activity-timeline/internal/data/scanner"
)

// DayFileFetcher implements window.DayFetcher over the capture directory.
type DayFileFetcher struct {
	scanner *scanner.CaptureScanner
	parser  *parser.Parser
}

// NewDayFileFetcher creates a fetcher rooted at the capture directory.
func NewDayFileFetcher(captureDir string) *DayFileFetcher {
	return &DayFileFetcher{
		scanner: scanner.NewCaptureScanner(captureDir),
		parser:  parser.NewParser(),
	}
}

// FetchDayGrid loads all captured events for a date. Days without a
// capture file resolve to an empty grid.
func (f *DayFileFetcher) FetchDayGrid(date model.CalendarDate) (*model.DayGrid, error) {
	grid, err := f.parser.ParseDayGrid(f.scanner.EventsPath(date), date)
	if err != nil {
		return nil, fmt.Errorf("fetch day grid %s: %w", date, err)
	}
	return grid, nil
}

// FetchDayScreenshots loads screenshot metadata for a date.
func (f *DayFileFetcher) FetchDayScreenshots(date model.CalendarDate) ([]model.Screenshot, error) {
	shots, err := f.parser.ParseScreenshots(f.scanner.ScreenshotsPath(date))
	if err != nil {
		return nil, fmt.Errorf("fetch screenshots %s: %w", date, err)
	}
	return shots, nil
}

// Scanner exposes the underlying path resolver, used by the watcher to
// map file events back to dates.
func (f *DayFileFetcher) Scanner() *scanner.CaptureScanner {
	return f.scanner
}
