package dashboard

import (
	"fmt"
	"time"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// Config contains configuration for the dashboard engine.
type Config struct {
	// CaptureDir is the root of the activity capture directory.
	CaptureDir string

	// Display settings
	Timezone string

	// InitialDate centers the window on startup; empty means today.
	InitialDate string
	// InitialZoom in (0,1]; 1.0 shows roughly one day.
	InitialZoom float64

	// RenderInterval is how often the view is pushed to the renderer
	// even without data changes.
	RenderInterval time.Duration
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.CaptureDir == "" {
		c.CaptureDir = "~/.go-activity-timeline/capture"
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.InitialZoom <= 0 || c.InitialZoom > 1 {
		c.InitialZoom = 1.0
	}
	if c.RenderInterval == 0 {
		c.RenderInterval = time.Second
	}
	if c.InitialDate != "" {
		if _, err := model.ParseCalendarDate(c.InitialDate); err != nil {
			return fmt.Errorf("initial date: %w", err)
		}
	}
	return nil
}
