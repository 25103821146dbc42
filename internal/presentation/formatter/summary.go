package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/util"
)

// SummaryFormatter renders per-kind totals for a date range.
type SummaryFormatter struct {
	writer io.Writer
}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{writer: os.Stdout}
}

// Format outputs the summary of all day reports.
func (f *SummaryFormatter) Format(data []DayReport) error {
	w := f.writer

	var focusSeconds, browserSeconds, shellSeconds int64
	var focusBlocks, visits, commits, commands, screenshots int
	var insertions, deletions, failed int

	for _, day := range data {
		screenshots += day.ScreenshotCount
		for _, g := range day.FocusGroups {
			focusSeconds += g.DurationSeconds
			focusBlocks += g.MergedCount
		}
		for _, g := range day.BrowserGroups {
			browserSeconds += g.TotalDurationSeconds
			visits += g.MergedCount
		}
		for _, g := range day.CommitGroups {
			commits += g.MergedCount
			insertions += g.TotalInsertions
			deletions += g.TotalDeletions
		}
		for _, g := range day.CommandGroups {
			shellSeconds += g.TotalDurationSeconds
			commands += g.MergedCount
			failed += g.FailedCount
		}
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "Activity Summary Report")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)

	if len(data) > 0 {
		firstDate := data[0].Date
		lastDate := data[len(data)-1].Date
		if firstDate == lastDate {
			fmt.Fprintf(w, "Date Range: %s\n", firstDate)
		} else {
			fmt.Fprintf(w, "Date Range: %s to %s\n", firstDate, lastDate)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Focus time:      %s across %s blocks\n",
		util.FormatDuration(time.Duration(focusSeconds)*time.Second), util.FormatNumber(focusBlocks))
	fmt.Fprintf(w, "Browsing:        %s across %s visits\n",
		util.FormatDuration(time.Duration(browserSeconds)*time.Second), util.FormatNumber(visits))
	fmt.Fprintf(w, "Git commits:     %s (+%s/-%s)\n",
		util.FormatNumber(commits), util.FormatNumber(insertions), util.FormatNumber(deletions))
	fmt.Fprintf(w, "Shell commands:  %s (%s failed), %s spent\n",
		util.FormatNumber(commands), util.FormatNumber(failed),
		util.FormatDuration(time.Duration(shellSeconds)*time.Second))
	fmt.Fprintf(w, "Screenshots:     %s\n", util.FormatNumber(screenshots))
	fmt.Fprintln(w)
	return nil
}
