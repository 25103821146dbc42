package parser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

func writeDayFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseDayGrid(t *testing.T) {
	path := writeDayFile(t, t.TempDir(), "2025-06-15.jsonl",
		`{"kind":"focus","timestamp":1749974400,"durationSeconds":300,"appName":"editor","windowTitle":"main.go"}`,
		`{"kind":"browser","timestamp":1749975000,"durationSeconds":45,"url":"https://pkg.go.dev/bufio","domain":"pkg.go.dev","title":"bufio package"}`,
		`{"kind":"git","timestamp":1749975600,"repository":"timeline","branch":"main","hash":"abc1234","message":"fix scan loop","insertions":12,"deletions":3}`,
		`{"kind":"shell","timestamp":1749976200,"durationSeconds":2,"command":"go vet ./...","workingDir":"/src/timeline","exitCode":0}`,
	)

	p := NewParser()
	grid, err := p.ParseDayGrid(path, "2025-06-15")
	require.NoError(t, err)

	assert.Equal(t, model.CalendarDate("2025-06-15"), grid.Date)
	require.Len(t, grid.FocusBlocks, 1)
	assert.Equal(t, "editor", grid.FocusBlocks[0].AppName)
	assert.Equal(t, int64(300), grid.FocusBlocks[0].DurationSeconds)
	require.Len(t, grid.BrowserVisits, 1)
	assert.Equal(t, "pkg.go.dev", grid.BrowserVisits[0].Domain)
	require.Len(t, grid.GitCommits, 1)
	assert.Equal(t, 12, grid.GitCommits[0].Insertions)
	assert.Equal(t, "fix scan loop", grid.GitCommits[0].Message)
	require.Len(t, grid.ShellCommands, 1)
	assert.Equal(t, 0, grid.ShellCommands[0].ExitCode)
}

func TestParseDayGridSkipsBadLines(t *testing.T) {
	path := writeDayFile(t, t.TempDir(), "2025-06-15.jsonl",
		`{"kind":"focus","timestamp":100,"durationSeconds":60,"appName":"editor"}`,
		`not json at all`,
		``,
		`{"kind":"teleport","timestamp":200}`,
		`{"kind":"focus","timestamp":300,"durationSeconds":60,"appName":"terminal"}`,
	)

	p := NewParser()
	grid, err := p.ParseDayGrid(path, "2025-06-15")
	require.NoError(t, err)

	require.Len(t, grid.FocusBlocks, 2)
	assert.Equal(t, "terminal", grid.FocusBlocks[1].AppName)
	assert.Empty(t, grid.BrowserVisits)
}

func TestParseDayGridMissingFile(t *testing.T) {
	p := NewParser()
	grid, err := p.ParseDayGrid(filepath.Join(t.TempDir(), "2025-06-15.jsonl"), "2025-06-15")
	require.NoError(t, err)

	assert.Equal(t, model.CalendarDate("2025-06-15"), grid.Date)
	assert.Empty(t, grid.FocusBlocks)
	assert.Empty(t, grid.BrowserVisits)
	assert.Empty(t, grid.GitCommits)
	assert.Empty(t, grid.ShellCommands)
}

func TestParseDayGridCachesUntilFileChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeDayFile(t, dir, "2025-06-15.jsonl",
		`{"kind":"focus","timestamp":100,"durationSeconds":60,"appName":"editor"}`,
	)

	p := NewParser()
	first, err := p.ParseDayGrid(path, "2025-06-15")
	require.NoError(t, err)
	require.Len(t, first.FocusBlocks, 1)

	again, err := p.ParseDayGrid(path, "2025-06-15")
	require.NoError(t, err)
	assert.Same(t, first, again)

	// Rewrite with more content and a bumped modtime so the cache misses.
	writeDayFile(t, dir, "2025-06-15.jsonl",
		`{"kind":"focus","timestamp":100,"durationSeconds":60,"appName":"editor"}`,
		`{"kind":"focus","timestamp":200,"durationSeconds":60,"appName":"browser"}`,
	)
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	updated, err := p.ParseDayGrid(path, "2025-06-15")
	require.NoError(t, err)
	assert.Len(t, updated.FocusBlocks, 2)
}

func TestParseScreenshots(t *testing.T) {
	path := writeDayFile(t, t.TempDir(), "2025-06-15.jsonl",
		`{"timestamp":1749974400,"path":"/shots/a.png","appName":"editor"}`,
		`{"timestamp":1749978000,"path":"/shots/b.png","appName":"browser"}`,
	)

	p := NewParser()
	shots, err := p.ParseScreenshots(path)
	require.NoError(t, err)

	require.Len(t, shots, 2)
	assert.Equal(t, int64(1749974400), shots[0].Timestamp)
	assert.Equal(t, "/shots/b.png", shots[1].Path)
}

func TestParseScreenshotsMissingFile(t *testing.T) {
	p := NewParser()
	shots, err := p.ParseScreenshots(filepath.Join(t.TempDir(), "2025-06-15.jsonl"))
	assert.NoError(t, err)
	assert.Empty(t, shots)
}
