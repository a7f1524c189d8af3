// Package notifications renders the transient messages shown beside the board title
package notifications

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// RenderInline renders a compact single-line notification
func RenderInline(severity Severity, message string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(severity.foreground())).
		Padding(0, 1).
		Render(severity.icon() + " " + message)
}

// RenderAll renders every notification on one line, newest last
func RenderAll(ns []state.Notification) string {
	parts := make([]string, 0, len(ns))
	for _, n := range ns {
		parts = append(parts, RenderInline(FromLevel(n.Level), n.Message))
	}
	return strings.Join(parts, "")
}
