package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-activity-timeline/internal/application/dashboard"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

var (
	timelineDate string
	timelineZoom float64
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Run the windowing engine against the capture directory",
	Long: `Runs the temporal windowing engine: keeps a zoom-dependent window of
day records resident around the center date, refetches days whose
capture files change, and prints the aggregate view as it evolves.
Interactive rendering attaches through the renderer interface; this
command uses a plain console renderer.`,
	RunE: runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)

	timelineCmd.Flags().StringVar(&timelineDate, "date", "",
		"Center date (YYYY-MM-DD, defaults to today)")
	timelineCmd.Flags().Float64Var(&timelineZoom, "zoom", 1.0,
		"Initial zoom level in (0,1]; 1.0 shows roughly one day")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	initLogging()

	config := &dashboard.Config{
		CaptureDir:  expandPath(captureDir),
		Timezone:    timezone,
		InitialDate: timelineDate,
		InitialZoom: timelineZoom,
	}

	orchestrator, err := dashboard.NewOrchestrator(config, newConsoleRenderer())
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return orchestrator.Run(ctx)
}

// consoleRenderer is the minimal rendering collaborator: it prints the
// evolving aggregate and emits no gestures. A real UI replaces it
// through the same interface.
type consoleRenderer struct {
	gestures chan dashboard.GestureEvent
	lastLine string
}

func newConsoleRenderer() *consoleRenderer {
	return &consoleRenderer{gestures: make(chan dashboard.GestureEvent)}
}

func (r *consoleRenderer) Gestures() <-chan dashboard.GestureEvent {
	return r.gestures
}

func (r *consoleRenderer) Render(view dashboard.View) {
	line := fmt.Sprintf("center=%s zoom=%.2f days=%d screenshots=%d loading=%d",
		view.CenterDate, view.ZoomLevel, len(view.LoadedDays),
		len(view.AllScreenshots), len(view.LoadingDays))
	if line == r.lastLine {
		return
	}
	r.lastLine = line
	fmt.Println(line)
	util.LogDebug("Rendered view: " + line)
}

func (r *consoleRenderer) Close() error {
	close(r.gestures)
	return nil
}
