package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

type CSVFormatter struct {
	writer io.Writer
}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{writer: os.Stdout}
}

func (f *CSVFormatter) Format(data []DayReport) error {
	w := csv.NewWriter(f.writer)
	defer w.Flush()

	headers := []string{"Date", "Kind", "Start", "End", "Count", "Duration (s)", "Detail", "Extra"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, day := range data {
		for _, row := range day.Rows {
			record := []string{
				day.Date,
				row.Kind,
				fmt.Sprintf("%d", row.Start),
				fmt.Sprintf("%d", row.End),
				fmt.Sprintf("%d", row.MergedCount),
				fmt.Sprintf("%d", row.Duration),
				row.Detail,
				row.Extra,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}
	return nil
}
