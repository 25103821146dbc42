package model

// FocusBlock is a contiguous span of window focus on one application.
type FocusBlock struct {
	Timestamp       int64  `json:"timestamp"`
	DurationSeconds int64  `json:"durationSeconds"`
	AppName         string `json:"appName"`
	WindowTitle     string `json:"windowTitle"`
}

// EventTimestamp returns the block's start time as a Unix timestamp.
func (f FocusBlock) EventTimestamp() int64 { return f.Timestamp }

// BrowserVisit is a single page visit captured from browser history.
type BrowserVisit struct {
	Timestamp       int64  `json:"timestamp"`
	DurationSeconds int64  `json:"durationSeconds"`
	URL             string `json:"url"`
	Domain          string `json:"domain"`
	Title           string `json:"title"`
}

func (b BrowserVisit) EventTimestamp() int64 { return b.Timestamp }

// GitCommit is a commit captured from local repository activity.
type GitCommit struct {
	Timestamp  int64  `json:"timestamp"`
	Repository string `json:"repository"`
	Branch     string `json:"branch"`
	Hash       string `json:"hash"`
	Message    string `json:"message"`
	Insertions int    `json:"insertions"`
	Deletions  int    `json:"deletions"`
}

func (g GitCommit) EventTimestamp() int64 { return g.Timestamp }

// ShellCommand is a command captured from shell history.
type ShellCommand struct {
	Timestamp       int64  `json:"timestamp"`
	DurationSeconds int64  `json:"durationSeconds"`
	Command         string `json:"command"`
	WorkingDir      string `json:"workingDir"`
	ExitCode        int    `json:"exitCode"`
}

func (s ShellCommand) EventTimestamp() int64 { return s.Timestamp }

// Screenshot is metadata for one captured screen image. The image file
// itself is owned by the capture layer; only the reference travels here.
type Screenshot struct {
	Timestamp int64  `json:"timestamp"`
	Path      string `json:"path"`
	AppName   string `json:"appName"`
}

func (s Screenshot) EventTimestamp() int64 { return s.Timestamp }

// DayGrid bundles all captured activity events for one calendar date.
type DayGrid struct {
	Date          CalendarDate   `json:"date"`
	FocusBlocks   []FocusBlock   `json:"focusBlocks"`
	BrowserVisits []BrowserVisit `json:"browserVisits"`
	GitCommits    []GitCommit    `json:"gitCommits"`
	ShellCommands []ShellCommand `json:"shellCommands"`
}

// DayRecord is the per-date unit held by the window store: the day's
// grid and screenshot list plus its fetch state. A record whose fetch
// never completes simply stays IsLoading; that is the only failure
// signal surfaced to consumers.
type DayRecord struct {
	Date        CalendarDate
	Grid        *DayGrid
	Screenshots []Screenshot
	IsLoading   bool
}

// TimeWindow is the combined visible span of the loaded days,
// as Unix-second bounds.
type TimeWindow struct {
	Start int64
	End   int64
}

// Contains reports whether ts falls inside the window.
func (w TimeWindow) Contains(ts int64) bool {
	return ts >= w.Start && ts <= w.End
}

// DurationSeconds returns the window length in seconds.
func (w TimeWindow) DurationSeconds() int64 {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start
}
