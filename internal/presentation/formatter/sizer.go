package formatter

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// displayWidth calculates the actual display width of a string
// containing emojis and wide Unicode characters.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// padString pads a string to a display width, handling wide runes.
func padString(s string, width int, leftAlign bool) string {
	actualWidth := displayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// truncateString cuts a string to a display width with an ellipsis.
func truncateString(s string, width int) string {
	if displayWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// terminalWidth returns the usable output width with a fallback for
// non-terminal destinations.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < 60 {
		return 100
	}
	if w > 140 {
		return 140
	}
	return w
}
