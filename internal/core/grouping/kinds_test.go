package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-activity-timeline/internal/core/model"
)

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()
	assert.Equal(t, int64(300), th.Focus)
	assert.Equal(t, int64(900), th.Browser)
	assert.Equal(t, int64(900), th.Git)
	assert.Equal(t, int64(600), th.Shell)
}

func TestMergeFocusBlocks(t *testing.T) {
	blocks := []model.FocusBlock{
		{Timestamp: 0, DurationSeconds: 60, WindowTitle: "editor"},
		{Timestamp: 120, DurationSeconds: 60, WindowTitle: "browser"},
		{Timestamp: 200, DurationSeconds: 100, WindowTitle: "editor"},
		{Timestamp: 2000, DurationSeconds: 30, WindowTitle: "terminal"},
	}

	groups := MergeFocusBlocks(blocks, 300)
	require.Len(t, groups, 2)

	first := groups[0]
	assert.Equal(t, 3, first.MergedCount)
	// Span duration is recomputed from the merged bounds.
	assert.Equal(t, int64(300), first.DurationSeconds)
	assert.Equal(t, []string{"editor", "browser"}, first.UniqueTitles)
	// Display title comes from the most recent member.
	assert.Equal(t, "editor", first.DisplayTitle)

	assert.Equal(t, "terminal", groups[1].DisplayTitle)
	assert.Equal(t, int64(30), groups[1].DurationSeconds)
}

func TestMergeFocusBlocksClampsNegativeDuration(t *testing.T) {
	blocks := []model.FocusBlock{{Timestamp: 100, DurationSeconds: -50, WindowTitle: "x"}}
	groups := MergeFocusBlocks(blocks, 300)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(0), groups[0].DurationSeconds)
	assert.Equal(t, int64(100), groups[0].EndTimestamp)
}

func TestMergeBrowserVisits(t *testing.T) {
	visits := []model.BrowserVisit{
		{Timestamp: 0, DurationSeconds: 30, Domain: "github.com", Title: "repo"},
		{Timestamp: 100, DurationSeconds: 45, Domain: "pkg.go.dev", Title: "docs"},
		{Timestamp: 400, DurationSeconds: 10, Domain: "github.com", Title: "issues"},
		{Timestamp: 5000, DurationSeconds: 60, Domain: "news.ycombinator.com", Title: "hn"},
	}

	groups := MergeBrowserVisits(visits, 900)
	require.Len(t, groups, 2)

	first := groups[0]
	assert.Equal(t, 3, first.MergedCount)
	// Cross-domain visits merge by time proximity alone.
	assert.Equal(t, []string{"github.com", "pkg.go.dev"}, first.UniqueDomains)
	assert.Equal(t, []string{"repo", "docs", "issues"}, first.UniqueTitles)
	// Summed per-visit durations, not the merged span.
	assert.Equal(t, int64(85), first.TotalDurationSeconds)
}

func TestMergeGitCommits(t *testing.T) {
	commits := []model.GitCommit{
		{Timestamp: 0, Repository: "activity-timeline", Branch: "main", Message: "fix planner", Insertions: 10, Deletions: 2},
		{Timestamp: 300, Repository: "activity-timeline", Branch: "feature/groups", Message: "add grouper", Insertions: 200, Deletions: 15},
		{Timestamp: 600, Repository: "dotfiles", Branch: "main", Message: "update zshrc", Insertions: 3, Deletions: 1},
		{Timestamp: 10000, Repository: "activity-timeline", Branch: "main", Message: "later", Insertions: 1, Deletions: 1},
	}

	groups := MergeGitCommits(commits, 900)
	require.Len(t, groups, 2)

	first := groups[0]
	assert.Equal(t, 3, first.MergedCount)
	assert.Equal(t, 213, first.TotalInsertions)
	assert.Equal(t, 18, first.TotalDeletions)
	assert.Equal(t, []string{"activity-timeline", "dotfiles"}, first.UniqueRepositories)
	assert.Equal(t, []string{"main", "feature/groups"}, first.UniqueBranches)
	// Display fields from the earliest commit.
	assert.Equal(t, "fix planner", first.DisplayMessage)
	assert.Equal(t, "activity-timeline", first.DisplayRepository)
}

func TestMergeShellCommands(t *testing.T) {
	commands := []model.ShellCommand{
		{Timestamp: 0, DurationSeconds: 5, WorkingDir: "/src/app", ExitCode: 0},
		{Timestamp: 100, DurationSeconds: 120, WorkingDir: "/src/app", ExitCode: 1},
		{Timestamp: 500, DurationSeconds: 2, WorkingDir: "/src/lib", ExitCode: 0},
		{Timestamp: 9999, DurationSeconds: 1, WorkingDir: "/tmp", ExitCode: 0},
	}

	groups := MergeShellCommands(commands, 600)
	require.Len(t, groups, 2)

	first := groups[0]
	assert.Equal(t, 3, first.MergedCount)
	assert.Equal(t, int64(127), first.TotalDurationSeconds)
	assert.Equal(t, 2, first.SucceededCount)
	assert.Equal(t, 1, first.FailedCount)
	assert.Equal(t, []string{"/src/app", "/src/lib"}, first.UniqueWorkingDirs)
}

func TestKindMergersEmptyInput(t *testing.T) {
	assert.Empty(t, MergeFocusBlocks(nil, 300))
	assert.Empty(t, MergeBrowserVisits(nil, 900))
	assert.Empty(t, MergeGitCommits(nil, 900))
	assert.Empty(t, MergeShellCommands(nil, 600))
}
