package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "~/.go-activity-timeline/capture", cfg.CaptureDir)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Equal(t, 1.0, cfg.InitialZoom)
	assert.Equal(t, time.Second, cfg.RenderInterval)
	assert.Empty(t, cfg.InitialDate)
}

func TestConfigValidateKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		CaptureDir:     "/data/capture",
		Timezone:       "Asia/Shanghai",
		InitialDate:    "2025-06-15",
		InitialZoom:    0.5,
		RenderInterval: 250 * time.Millisecond,
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/data/capture", cfg.CaptureDir)
	assert.Equal(t, "Asia/Shanghai", cfg.Timezone)
	assert.Equal(t, 0.5, cfg.InitialZoom)
	assert.Equal(t, 250*time.Millisecond, cfg.RenderInterval)
}

func TestConfigValidateZoomBounds(t *testing.T) {
	for _, zoom := range []float64{-1, 0, 1.5} {
		cfg := &Config{InitialZoom: zoom}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 1.0, cfg.InitialZoom)
	}
}

func TestConfigValidateRejectsBadDate(t *testing.T) {
	cfg := &Config{InitialDate: "June 15"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{InitialDate: "2025-6-15"}
	assert.Error(t, cfg.Validate())
}
