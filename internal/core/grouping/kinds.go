package grouping

import (
	"github.com/penwyp/go-activity-timeline/internal/core/constants"
	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

// Thresholds carries the per-kind gap thresholds in seconds. The zero
// value is unusable; use DefaultThresholds and override as needed.
type Thresholds struct {
	Focus   int64
	Browser int64
	Git     int64
	Shell   int64
}

// DefaultThresholds returns the shipped gap thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Focus:   constants.FocusGapSeconds,
		Browser: constants.BrowserGapSeconds,
		Git:     constants.GitGapSeconds,
		Shell:   constants.ShellGapSeconds,
	}
}

// FocusGroup is a merged run of focus blocks. DurationSeconds is the
// merged span, not the sum of member durations.
type FocusGroup struct {
	Group[model.FocusBlock]
	DurationSeconds int64
	UniqueTitles    []string
	DisplayTitle    string // most recent member's title
}

// MergeFocusBlocks collapses focus blocks under the focus gap threshold.
func MergeFocusBlocks(blocks []model.FocusBlock, maxGapSeconds int64) []FocusGroup {
	raw := Merge(blocks, maxGapSeconds, func(b model.FocusBlock) int64 {
		return clampDuration(b.DurationSeconds)
	})

	groups := make([]FocusGroup, 0, len(raw))
	for _, g := range raw {
		fg := FocusGroup{
			Group:           g,
			DurationSeconds: g.EndTimestamp - g.StartTimestamp,
			UniqueTitles:    uniqueStrings(g.Events, func(b model.FocusBlock) string { return b.WindowTitle }),
			DisplayTitle:    g.Events[len(g.Events)-1].WindowTitle,
		}
		groups = append(groups, fg)
	}
	return groups
}

// BrowserGroup is a merged run of browser visits. Visits merge by time
// proximity alone, not by domain: the goal is avoiding visual overlap,
// not semantic grouping. TotalDurationSeconds sums each visit's own
// duration because short visits overlap freely within a group.
type BrowserGroup struct {
	Group[model.BrowserVisit]
	TotalDurationSeconds int64
	UniqueTitles         []string
	UniqueDomains        []string
}

// MergeBrowserVisits collapses browser visits under the browser gap threshold.
func MergeBrowserVisits(visits []model.BrowserVisit, maxGapSeconds int64) []BrowserGroup {
	raw := Merge(visits, maxGapSeconds, func(v model.BrowserVisit) int64 {
		return clampDuration(v.DurationSeconds)
	})

	groups := make([]BrowserGroup, 0, len(raw))
	for _, g := range raw {
		bg := BrowserGroup{
			Group:         g,
			UniqueTitles:  uniqueStrings(g.Events, func(v model.BrowserVisit) string { return v.Title }),
			UniqueDomains: uniqueStrings(g.Events, func(v model.BrowserVisit) string { return v.Domain }),
		}
		for _, v := range g.Events {
			bg.TotalDurationSeconds += clampDuration(v.DurationSeconds)
		}
		groups = append(groups, bg)
	}
	return groups
}

// CommitGroup is a merged run of git commits. Display fields come from
// the earliest commit in the group.
type CommitGroup struct {
	Group[model.GitCommit]
	TotalInsertions    int
	TotalDeletions     int
	UniqueRepositories []string
	UniqueBranches     []string
	DisplayRepository  string
	DisplayMessage     string
}

// MergeGitCommits collapses commits under the git gap threshold.
func MergeGitCommits(commits []model.GitCommit, maxGapSeconds int64) []CommitGroup {
	raw := Merge(commits, maxGapSeconds, nil)

	groups := make([]CommitGroup, 0, len(raw))
	for _, g := range raw {
		cg := CommitGroup{
			Group:              g,
			UniqueRepositories: uniqueStrings(g.Events, func(c model.GitCommit) string { return c.Repository }),
			UniqueBranches:     uniqueStrings(g.Events, func(c model.GitCommit) string { return c.Branch }),
			DisplayRepository:  g.Events[0].Repository,
			DisplayMessage:     g.Events[0].Message,
		}
		for _, commit := range g.Events {
			cg.TotalInsertions += commit.Insertions
			cg.TotalDeletions += commit.Deletions
		}
		groups = append(groups, cg)
	}
	return groups
}

// CommandGroup is a merged run of shell commands.
type CommandGroup struct {
	Group[model.ShellCommand]
	TotalDurationSeconds int64
	SucceededCount       int
	FailedCount          int
	UniqueWorkingDirs    []string
}

// MergeShellCommands collapses shell commands under the shell gap threshold.
func MergeShellCommands(commands []model.ShellCommand, maxGapSeconds int64) []CommandGroup {
	raw := Merge(commands, maxGapSeconds, func(c model.ShellCommand) int64 {
		return clampDuration(c.DurationSeconds)
	})

	groups := make([]CommandGroup, 0, len(raw))
	for _, g := range raw {
		sg := CommandGroup{
			Group:             g,
			UniqueWorkingDirs: uniqueStrings(g.Events, func(c model.ShellCommand) string { return c.WorkingDir }),
		}
		for _, cmd := range g.Events {
			sg.TotalDurationSeconds += clampDuration(cmd.DurationSeconds)
			if cmd.ExitCode == 0 {
				sg.SucceededCount++
			} else {
				sg.FailedCount++
			}
		}
		groups = append(groups, sg)
	}
	return groups
}

func clampDuration(seconds int64) int64 {
	if seconds < 0 {
		return 0
	}
	return seconds
}

// uniqueStrings collects distinct non-empty values in first-seen order.
func uniqueStrings[T any](events []T, keyOf func(T) string) []string {
	seen := make(map[string]struct{}, len(events))
	var out []string
	for _, ev := range events {
		key := keyOf(ev)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
