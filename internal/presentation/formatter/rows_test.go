package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-activity-timeline/internal/core/grouping"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

func sampleGrid() *model.DayGrid {
	return &model.DayGrid{
		Date: "2025-06-15",
		FocusBlocks: []model.FocusBlock{
			{Timestamp: 1000, DurationSeconds: 100, AppName: "editor", WindowTitle: "main.go"},
			{Timestamp: 1200, DurationSeconds: 100, AppName: "editor", WindowTitle: "store.go"},
		},
		BrowserVisits: []model.BrowserVisit{
			{Timestamp: 500, DurationSeconds: 60, URL: "https://pkg.go.dev/sync", Domain: "pkg.go.dev", Title: "sync"},
		},
		GitCommits: []model.GitCommit{
			{Timestamp: 2000, Repository: "timeline", Branch: "main", Hash: "abc", Message: "wire watcher", Insertions: 5, Deletions: 1},
		},
		ShellCommands: []model.ShellCommand{
			{Timestamp: 100, DurationSeconds: 3, Command: "make lint", WorkingDir: "/src", ExitCode: 2},
		},
	}
}

func TestBuildDayReport(t *testing.T) {
	shots := []model.Screenshot{{Timestamp: 900, Path: "/shots/a.png"}}
	report := BuildDayReport(sampleGrid(), shots, grouping.DefaultThresholds())

	assert.Equal(t, "2025-06-15", report.Date)
	assert.Equal(t, 1, report.ScreenshotCount)
	require.Len(t, report.FocusGroups, 1)
	require.Len(t, report.BrowserGroups, 1)
	require.Len(t, report.CommitGroups, 1)
	require.Len(t, report.CommandGroups, 1)
	require.Len(t, report.Rows, 4)

	// Rows interleave all kinds sorted by start time.
	kinds := make([]string, len(report.Rows))
	for i, row := range report.Rows {
		kinds[i] = row.Kind
	}
	assert.Equal(t, []string{"shell", "browser", "focus", "git"}, kinds)

	focus := report.Rows[2]
	assert.Equal(t, int64(1000), focus.Start)
	assert.Equal(t, int64(1300), focus.End)
	assert.Equal(t, 2, focus.MergedCount)
	assert.Equal(t, int64(300), focus.Duration)
	assert.Equal(t, "store.go", focus.Detail)

	git := report.Rows[3]
	assert.Equal(t, "timeline: wire watcher", git.Detail)
	assert.Equal(t, "+5/-1", git.Extra)

	shell := report.Rows[0]
	assert.Equal(t, "0 ok, 1 failed", shell.Extra)
}

func TestBuildDayReportEmptyGrid(t *testing.T) {
	report := BuildDayReport(&model.DayGrid{Date: "2025-06-15"}, nil, grouping.DefaultThresholds())

	assert.Equal(t, "2025-06-15", report.Date)
	assert.Zero(t, report.ScreenshotCount)
	assert.Empty(t, report.Rows)
}
