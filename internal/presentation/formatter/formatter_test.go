package formatter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-activity-timeline/internal/core/grouping"
)

func sampleReports() []DayReport {
	return []DayReport{
		BuildDayReport(sampleGrid(), nil, grouping.DefaultThresholds()),
	}
}

func TestNewWithWriterSelectsFormat(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, &JSONFormatter{}, NewWithWriter("json", &buf))
	assert.IsType(t, &CSVFormatter{}, NewWithWriter("csv", &buf))
	assert.IsType(t, &SummaryFormatter{}, NewWithWriter("summary", &buf))
	assert.IsType(t, &TableFormatter{}, NewWithWriter("table", &buf))
	assert.IsType(t, &TableFormatter{}, NewWithWriter("", &buf))
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	f := NewWithWriter("json", &buf)
	require.NoError(t, f.Format(sampleReports()))

	var decoded []struct {
		Date            string     `json:"date"`
		Groups          []GroupRow `json:"groups"`
		ScreenshotCount int        `json:"screenshotCount"`
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded, 1)
	assert.Equal(t, "2025-06-15", decoded[0].Date)
	require.Len(t, decoded[0].Groups, 4)
	assert.Equal(t, "shell", decoded[0].Groups[0].Kind)
}

func TestCSVFormatterRecords(t *testing.T) {
	var buf bytes.Buffer
	f := NewWithWriter("csv", &buf)
	require.NoError(t, f.Format(sampleReports()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 5) // header plus four rows
	assert.Equal(t, []string{"Date", "Kind", "Start", "End", "Count", "Duration (s)", "Detail", "Extra"}, records[0])
	assert.Equal(t, "2025-06-15", records[1][0])
	assert.Equal(t, "shell", records[1][1])
	assert.Equal(t, "git", records[4][1])
	assert.Equal(t, "+5/-1", records[4][7])
}

func TestSummaryFormatterTotals(t *testing.T) {
	var buf bytes.Buffer
	f := NewWithWriter("summary", &buf)
	require.NoError(t, f.Format(sampleReports()))

	out := buf.String()
	assert.Contains(t, out, "Activity Summary Report")
	assert.Contains(t, out, "Date Range: 2025-06-15")
	assert.Contains(t, out, "across 2 blocks")
	assert.Contains(t, out, "across 1 visits")
	assert.Contains(t, out, "(+5/-1)")
	assert.Contains(t, out, "1 (1 failed)")
}

func TestSummaryFormatterMultiDayRange(t *testing.T) {
	reports := sampleReports()
	second := reports[0]
	second.Date = "2025-06-16"
	reports = append(reports, second)

	var buf bytes.Buffer
	f := NewWithWriter("summary", &buf)
	require.NoError(t, f.Format(reports))

	assert.Contains(t, buf.String(), "Date Range: 2025-06-15 to 2025-06-16")
}

func TestTableFormatterLayout(t *testing.T) {
	var buf bytes.Buffer
	f := NewWithWriter("table", &buf)
	require.NoError(t, f.Format(sampleReports()))

	out := buf.String()
	assert.Contains(t, out, "2025-06-15 (0 screenshots)")
	assert.Contains(t, out, "| Start")
	assert.Contains(t, out, "timeline: wire watcher")

	// Borders and rows line up at the same width.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var widths []int
	for _, line := range lines {
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "|") {
			widths = append(widths, len(line))
		}
	}
	require.NotEmpty(t, widths)
	for _, w := range widths {
		assert.Equal(t, widths[0], w)
	}
}
