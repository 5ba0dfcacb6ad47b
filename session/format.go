package session

import "strings"

// FormatSummary prepares generated text for display. Models tend to open
// with a preamble line, so everything up to the first newline is dropped
// unless full is set. The result ends with a blank line.
func FormatSummary(summary string, full bool) string {
	if !full {
		_, summary, _ = strings.Cut(summary, "\n")
	}
	return summary + "\n\n"
}
