package formatter

import (
	"io"
	"os"

	"github.com/bytedance/sonic"
)

type JSONFormatter struct {
	writer io.Writer
}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{writer: os.Stdout}
}

func (f *JSONFormatter) Format(data []DayReport) error {
	encoder := sonic.ConfigDefault.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
