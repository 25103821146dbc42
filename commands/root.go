package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-activity-timeline/internal/core/constants"
	"github.com/penwyp/go-activity-timeline/internal/core/grouping"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/data/fetcher"
	"github.com/penwyp/go-activity-timeline/internal/presentation/formatter"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

var (
	// Logging related
	debug bool

	// Data path
	captureDir string

	// Output related
	outputFormat string
	timezone     string

	// Date range
	fromDate string
	toDate   string
	lastDays int

	// Grouping thresholds (seconds)
	focusGap   int64
	browserGap int64
	gitGap     int64
	shellGap   int64

	rootCmd = &cobra.Command{
		Use:   "go-activity-timeline [flags]",
		Short: "Personal activity timeline tool",
		Long: `go-activity-timeline reads a local activity capture directory (window
focus, browser visits, git commits, shell commands, screenshots) and
renders merged activity groups along a time axis.

Examples:
  go-activity-timeline                             # Summarize the last 7 days
  go-activity-timeline --last 1                    # Summarize today
  go-activity-timeline --from 2024-01-10 --to 2024-01-15
  go-activity-timeline --output json               # Machine-readable groups
  go-activity-timeline timeline                    # Run the interactive engine`,
		RunE: runSummary,
	}
)

const (
	defaultLogFile    = "~/.go-activity-timeline/logs/app.log"
	defaultCaptureDir = "~/.go-activity-timeline/capture"
)

func init() {
	// Input data configuration
	rootCmd.PersistentFlags().StringVar(&captureDir, "dir", defaultCaptureDir,
		"Activity capture directory path")

	// Date range
	rootCmd.Flags().StringVar(&fromDate, "from", "",
		"Start date (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&toDate, "to", "",
		"End date (YYYY-MM-DD, defaults to today)")
	rootCmd.Flags().IntVar(&lastDays, "last", 7,
		"Number of days to include when --from is not given")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")

	// Grouping thresholds
	rootCmd.Flags().Int64Var(&focusGap, "focus-gap", constants.FocusGapSeconds,
		"Merge gap for focus blocks in seconds")
	rootCmd.Flags().Int64Var(&browserGap, "browser-gap", constants.BrowserGapSeconds,
		"Merge gap for browser visits in seconds")
	rootCmd.Flags().Int64Var(&gitGap, "git-gap", constants.GitGapSeconds,
		"Merge gap for git commits in seconds")
	rootCmd.Flags().Int64Var(&shellGap, "shell-gap", constants.ShellGapSeconds,
		"Merge gap for shell commands in seconds")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runSummary(cmd *cobra.Command, args []string) error {
	initLogging()
	if err := util.InitializeTimeProvider(timezone); err != nil {
		return err
	}

	dates, err := resolveDateRange()
	if err != nil {
		return err
	}

	thresholds := grouping.Thresholds{
		Focus:   focusGap,
		Browser: browserGap,
		Git:     gitGap,
		Shell:   shellGap,
	}

	dayFetcher := fetcher.NewDayFileFetcher(expandPath(captureDir))
	reports := make([]formatter.DayReport, 0, len(dates))
	for _, date := range dates {
		grid, err := dayFetcher.FetchDayGrid(date)
		if err != nil {
			return err
		}
		shots, err := dayFetcher.FetchDayScreenshots(date)
		if err != nil {
			return err
		}
		reports = append(reports, formatter.BuildDayReport(grid, shots, thresholds))
	}

	return formatter.New(outputFormat).Format(reports)
}

// resolveDateRange turns --from/--to/--last into an ascending date list.
func resolveDateRange() ([]model.CalendarDate, error) {
	tp := util.GetTimeProvider()
	today := model.DateOf(tp.Now())

	end := today
	if toDate != "" {
		d, err := model.ParseCalendarDate(toDate)
		if err != nil {
			return nil, err
		}
		end = d
	}

	start := end.AddDays(-(lastDays - 1))
	if fromDate != "" {
		d, err := model.ParseCalendarDate(fromDate)
		if err != nil {
			return nil, err
		}
		start = d
	}
	if end.Before(start) {
		return nil, fmt.Errorf("date range ends (%s) before it starts (%s)", end, start)
	}

	var dates []model.CalendarDate
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates, nil
}

func initLogging() {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
