// Package parser decodes per-day capture files. Each line of an events
// file is one JSON object with a "kind" discriminator; screenshot files
// hold plain screenshot metadata objects.
package parser

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
	"github.com/penwyp/go-activity-timeline/internal/util"
)

// Event kinds as written by the capture layer.
const (
	KindFocus   = "focus"
	KindBrowser = "browser"
	KindGit     = "git"
	KindShell   = "shell"
)

// eventEnvelope is the superset of all event kinds; the Kind field
// picks which slice of fields is meaningful.
type eventEnvelope struct {
	Kind            string `json:"kind"`
	Timestamp       int64  `json:"timestamp"`
	DurationSeconds int64  `json:"durationSeconds"`
	AppName         string `json:"appName"`
	WindowTitle     string `json:"windowTitle"`
	URL             string `json:"url"`
	Domain          string `json:"domain"`
	Title           string `json:"title"`
	Repository      string `json:"repository"`
	Branch          string `json:"branch"`
	Hash            string `json:"hash"`
	Message         string `json:"message"`
	Insertions      int    `json:"insertions"`
	Deletions       int    `json:"deletions"`
	Command         string `json:"command"`
	WorkingDir      string `json:"workingDir"`
	ExitCode        int    `json:"exitCode"`
}

type cacheEntry struct {
	modTime int64
	size    int64
	grid    *model.DayGrid
	shots   []model.Screenshot
}

// Parser decodes day files with a small modtime-keyed cache so a day
// is only re-parsed after its file changes.
type Parser struct {
	mu         sync.Mutex
	gridCache  map[string]*cacheEntry
	shotsCache map[string]*cacheEntry
}

// NewParser creates a Parser instance.
func NewParser() *Parser {
	return &Parser{
		gridCache:  make(map[string]*cacheEntry),
		shotsCache: make(map[string]*cacheEntry),
	}
}

// ParseDayGrid decodes one events file into a DayGrid. A missing file
// yields an empty grid: a day with no captured activity is not an error.
func (p *Parser) ParseDayGrid(path string, date model.CalendarDate) (*model.DayGrid, error) {
	grid := &model.DayGrid{Date: date}

	info, err := util.GetFileInfo(path)
	if err != nil {
		if os.IsNotExist(err) {
			return grid, nil
		}
		return nil, err
	}

	p.mu.Lock()
	if entry, ok := p.gridCache[path]; ok && entry.modTime == info.ModTime && entry.size == info.Size {
		p.mu.Unlock()
		return entry.grid, nil
	}
	p.mu.Unlock()

	lineCount := 0
	err = p.scanLines(path, func(line []byte) {
		lineCount++
		var env eventEnvelope
		if err := sonic.Unmarshal(line, &env); err != nil {
			util.LogDebug(fmt.Sprintf("Skip invalid JSON line %s:%d - %v", path, lineCount, err))
			return
		}
		appendEvent(grid, env)
	})
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.gridCache[path] = &cacheEntry{modTime: info.ModTime, size: info.Size, grid: grid}
	p.mu.Unlock()
	return grid, nil
}

// ParseScreenshots decodes one screenshot metadata file. A missing
// file yields an empty list.
func (p *Parser) ParseScreenshots(path string) ([]model.Screenshot, error) {
	info, err := util.GetFileInfo(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	p.mu.Lock()
	if entry, ok := p.shotsCache[path]; ok && entry.modTime == info.ModTime && entry.size == info.Size {
		p.mu.Unlock()
		return entry.shots, nil
	}
	p.mu.Unlock()

	var shots []model.Screenshot
	lineCount := 0
	err = p.scanLines(path, func(line []byte) {
		lineCount++
		var shot model.Screenshot
		if err := sonic.Unmarshal(line, &shot); err != nil {
			util.LogDebug(fmt.Sprintf("Skip invalid JSON line %s:%d - %v", path, lineCount, err))
			return
		}
		shots = append(shots, shot)
	})
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.shotsCache[path] = &cacheEntry{modTime: info.ModTime, size: info.Size, shots: shots}
	p.mu.Unlock()
	return shots, nil
}

func (p *Parser) scanLines(path string, handle func(line []byte)) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		handle(scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	return nil
}

func appendEvent(grid *model.DayGrid, env eventEnvelope) {
	switch env.Kind {
	case KindFocus:
		grid.FocusBlocks = append(grid.FocusBlocks, model.FocusBlock{
			Timestamp:       env.Timestamp,
			DurationSeconds: env.DurationSeconds,
			AppName:         env.AppName,
			WindowTitle:     env.WindowTitle,
		})
	case KindBrowser:
		grid.BrowserVisits = append(grid.BrowserVisits, model.BrowserVisit{
			Timestamp:       env.Timestamp,
			DurationSeconds: env.DurationSeconds,
			URL:             env.URL,
			Domain:          env.Domain,
			Title:           env.Title,
		})
	case KindGit:
		grid.GitCommits = append(grid.GitCommits, model.GitCommit{
			Timestamp:  env.Timestamp,
			Repository: env.Repository,
			Branch:     env.Branch,
			Hash:       env.Hash,
			Message:    env.Message,
			Insertions: env.Insertions,
			Deletions:  env.Deletions,
		})
	case KindShell:
		grid.ShellCommands = append(grid.ShellCommands, model.ShellCommand{
			Timestamp:       env.Timestamp,
			DurationSeconds: env.DurationSeconds,
			Command:         env.Command,
			WorkingDir:      env.WorkingDir,
			ExitCode:        env.ExitCode,
		})
	default:
		util.LogDebug(fmt.Sprintf("Skip unknown event kind %q", env.Kind))
	}
}
