// Package scanner locates per-day capture files under the capture
// directory. Layout: <base>/events/<date>.jsonl holds activity events,
// <base>/screenshots/<date>.jsonl holds screenshot metadata.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

const (
	eventsDir      = "events"
	screenshotsDir = "screenshots"
	fileExt        = ".jsonl"
)

// CaptureScanner resolves day keys to capture file paths and back.
type CaptureScanner struct {
	baseDir string
}

// NewCaptureScanner creates a scanner rooted at the capture directory.
func NewCaptureScanner(baseDir string) *CaptureScanner {
	return &CaptureScanner{baseDir: baseDir}
}

// EventsPath returns the events file path for a date. The file may not exist.
func (s *CaptureScanner) EventsPath(date model.CalendarDate) string {
	return filepath.Join(s.baseDir, eventsDir, date.String()+fileExt)
}

// ScreenshotsPath returns the screenshot metadata path for a date.
func (s *CaptureScanner) ScreenshotsPath(date model.CalendarDate) string {
	return filepath.Join(s.baseDir, screenshotsDir, date.String()+fileExt)
}

// DateForPath extracts the day key from a capture file path, used to
// map watcher events back to the affected date. Returns false for
// paths that are not day files.
func (s *CaptureScanner) DateForPath(path string) (model.CalendarDate, bool) {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, fileExt) {
		return "", false
	}
	date, err := model.ParseCalendarDate(strings.TrimSuffix(name, fileExt))
	if err != nil {
		return "", false
	}
	return date, true
}

// ScanDates walks the events directory and returns every date that has
// a capture file, sorted ascending.
func (s *CaptureScanner) ScanDates() ([]model.CalendarDate, error) {
	start := time.Now()
	dir := filepath.Join(s.baseDir, eventsDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan capture directory: %w", err)
	}

	var dates []model.CalendarDate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if date, ok := s.DateForPath(entry.Name()); ok {
			dates = append(dates, date)
		}
	}

	util.LogDebug(fmt.Sprintf("Capture scan completed: duration %v, %d entries, %d day files",
		time.Since(start), len(entries), len(dates)))
	return dates, nil
}
