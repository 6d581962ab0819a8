package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/penumbra-droid/droidsound/internal/theme"
)

const (
	defaultErrorWidth = 80
	maxErrorLines     = 2
	minErrorWidth     = 20
	truncationMark    = "..."
)

// formatErrorForDisplay wraps "Error: <err>" to width and keeps at most
// maxErrorLines lines, marking the cut with "..."
func formatErrorForDisplay(err error, width int) string {
	if err == nil {
		return ""
	}
	if width <= 0 {
		width = defaultErrorWidth
	}
	width = max(width, minErrorWidth)

	message := err.Error()
	if message == "" {
		message = "unknown error"
	}

	wrapped := lipgloss.NewStyle().Width(width).Render("Error: " + message)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}

	if len(lines) > maxErrorLines {
		lines = lines[:maxErrorLines]
		last := ansi.Truncate(lines[maxErrorLines-1], width-len(truncationMark), "")
		lines[maxErrorLines-1] = last + truncationMark
	}

	return theme.ErrorStyle.Render(strings.Join(lines, "\n"))
}
