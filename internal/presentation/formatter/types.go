package formatter

import (
	"io"
	"os"

	"github.com/penwyp/go-activity-timeline/internal/core/grouping"
)

// GroupRow is one merged block on the timeline, flattened for output.
type GroupRow struct {
	Kind        string `json:"kind"`
	Start       int64  `json:"start"`
	End         int64  `json:"end"`
	MergedCount int    `json:"mergedCount"`
	// Duration is the kind's aggregate duration in seconds: merged span
	// for focus groups, summed member durations elsewhere.
	Duration int64  `json:"durationSeconds"`
	Detail   string `json:"detail"`
	Extra    string `json:"extra,omitempty"`
}

// DayReport is everything the summary command derives for one date.
type DayReport struct {
	Date            string                  `json:"date"`
	FocusGroups     []grouping.FocusGroup   `json:"-"`
	BrowserGroups   []grouping.BrowserGroup `json:"-"`
	CommitGroups    []grouping.CommitGroup  `json:"-"`
	CommandGroups   []grouping.CommandGroup `json:"-"`
	Rows            []GroupRow              `json:"groups"`
	ScreenshotCount int                     `json:"screenshotCount"`
}

// Formatter outputs day reports in one concrete format.
type Formatter interface {
	Format(data []DayReport) error
}

// New returns the formatter for a format name, defaulting to table.
func New(format string) Formatter {
	return NewWithWriter(format, os.Stdout)
}

// NewWithWriter is New with an explicit destination, for tests.
func NewWithWriter(format string, w io.Writer) Formatter {
	switch format {
	case "json":
		return &JSONFormatter{writer: w}
	case "csv":
		return &CSVFormatter{writer: w}
	case "summary":
		return &SummaryFormatter{writer: w}
	default:
		return &TableFormatter{writer: w}
	}
}
