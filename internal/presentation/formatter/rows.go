package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/penwyp/go-activity-timeline/internal/core/grouping"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// BuildDayReport groups one day's events under the given thresholds
// and flattens the result into output rows sorted by start time.
func BuildDayReport(grid *model.DayGrid, screenshots []model.Screenshot, thresholds grouping.Thresholds) DayReport {
	report := DayReport{
		Date:            grid.Date.String(),
		FocusGroups:     grouping.MergeFocusBlocks(grid.FocusBlocks, thresholds.Focus),
		BrowserGroups:   grouping.MergeBrowserVisits(grid.BrowserVisits, thresholds.Browser),
		CommitGroups:    grouping.MergeGitCommits(grid.GitCommits, thresholds.Git),
		CommandGroups:   grouping.MergeShellCommands(grid.ShellCommands, thresholds.Shell),
		ScreenshotCount: len(screenshots),
	}

	for _, g := range report.FocusGroups {
		report.Rows = append(report.Rows, GroupRow{
			Kind:        "focus",
			Start:       g.StartTimestamp,
			End:         g.EndTimestamp,
			MergedCount: g.MergedCount,
			Duration:    g.DurationSeconds,
			Detail:      g.DisplayTitle,
			Extra:       fmt.Sprintf("%d titles", len(g.UniqueTitles)),
		})
	}
	for _, g := range report.BrowserGroups {
		report.Rows = append(report.Rows, GroupRow{
			Kind:        "browser",
			Start:       g.StartTimestamp,
			End:         g.EndTimestamp,
			MergedCount: g.MergedCount,
			Duration:    g.TotalDurationSeconds,
			Detail:      strings.Join(g.UniqueDomains, ", "),
			Extra:       fmt.Sprintf("%d pages", len(g.UniqueTitles)),
		})
	}
	for _, g := range report.CommitGroups {
		report.Rows = append(report.Rows, GroupRow{
			Kind:        "git",
			Start:       g.StartTimestamp,
			End:         g.EndTimestamp,
			MergedCount: g.MergedCount,
			Detail:      fmt.Sprintf("%s: %s", g.DisplayRepository, g.DisplayMessage),
			Extra:       fmt.Sprintf("+%d/-%d", g.TotalInsertions, g.TotalDeletions),
		})
	}
	for _, g := range report.CommandGroups {
		report.Rows = append(report.Rows, GroupRow{
			Kind:        "shell",
			Start:       g.StartTimestamp,
			End:         g.EndTimestamp,
			MergedCount: g.MergedCount,
			Duration:    g.TotalDurationSeconds,
			Detail:      strings.Join(g.UniqueWorkingDirs, ", "),
			Extra:       fmt.Sprintf("%d ok, %d failed", g.SucceededCount, g.FailedCount),
		})
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Start < report.Rows[j].Start
	})
	return report
}
