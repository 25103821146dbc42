package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/penwyp/go-activity-timeline/internal/util"
)

type TableFormatter struct {
	writer io.Writer
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{writer: os.Stdout}
}

var tableHeaders = []string{"Start", "End", "Kind", "Count", "Duration", "Detail"}

func (f *TableFormatter) Format(data []DayReport) error {
	w := f.writer
	detailWidth := terminalWidth() - 48
	if detailWidth < 20 {
		detailWidth = 20
	}
	widths := []int{8, 8, 7, 5, 8, detailWidth}

	for _, day := range data {
		fmt.Fprintf(w, "%s (%d screenshots)\n", day.Date, day.ScreenshotCount)
		f.printBorder(w, widths)
		f.printRow(w, tableHeaders, widths)
		f.printBorder(w, widths)

		for _, row := range day.Rows {
			detail := row.Detail
			if row.Extra != "" {
				detail = fmt.Sprintf("%s (%s)", detail, row.Extra)
			}
			f.printRow(w, []string{
				util.FormatClock(row.Start),
				util.FormatClock(row.End),
				row.Kind,
				fmt.Sprintf("%d", row.MergedCount),
				util.FormatSeconds(row.Duration),
				truncateString(detail, detailWidth),
			}, widths)
		}
		f.printBorder(w, widths)
		fmt.Fprintln(w)
	}
	return nil
}

func (f *TableFormatter) printRow(w io.Writer, cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = padString(cell, widths[i], true)
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(parts, " | "))
}

func (f *TableFormatter) printBorder(w io.Writer, widths []int) {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width+2)
	}
	fmt.Fprintf(w, "+%s+\n", strings.Join(parts, "+"))
}
