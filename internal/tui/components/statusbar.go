package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

type StatusBarProps struct {
	Width      int
	Mode       string
	Detail     string // what is being dragged, or the pending action
	Connection string
}

// RenderStatusBar renders the mode on the left and the help hint on the right
func RenderStatusBar(props StatusBarProps) string {
	mode := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		Render(" " + props.Mode + " ")

	left := mode
	if props.Detail != "" {
		left += StatusBarStyle.Render(" " + props.Detail)
	}

	right := StatusBarStyle.Render("press ? for help")
	if props.Connection != "" {
		right = StatusBarStyle.Render(props.Connection+" · ") + right
	}

	gap := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}
