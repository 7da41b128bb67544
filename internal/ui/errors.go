package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	maxErrorLines  = 2
	minErrorWidth  = 10
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay renders an error for the status area.
// The message is prefixed with "Error: ", word-wrapped to maxWidth and cut
// to maxErrorLines, ending in "..." when text was dropped.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.Join(strings.Fields(err.Error()), " ")
	if message == "" {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minErrorWidth)
	wrapped := lipgloss.NewStyle().Width(width).Render(errorPrefix + message)

	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) <= maxErrorLines {
		return strings.Join(lines, "\n")
	}

	lines = lines[:maxErrorLines]
	last := []rune(lines[maxErrorLines-1])
	if room := width - len(truncationMark); len(last) > room {
		last = last[:room]
	}
	lines[maxErrorLines-1] = string(last) + truncationMark
	return strings.Join(lines, "\n")
}
