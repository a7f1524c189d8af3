package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// TaskProps describes one card
type TaskProps struct {
	Task     models.Task
	Selected bool
	Dragging bool // the card is the one being carried
}

// RenderTask renders a single task as a card
//
//	┌────────────────────────────────────┐
//	│ {Task Title}                    ⛓ │
//	│ {short id}                         │
//	└────────────────────────────────────┘
func RenderTask(props TaskProps) string {
	title := props.Task.Title
	if len([]rune(title)) > taskTitleMaxLength {
		title = string([]rune(title)[:taskTitleMaxLength]) + "..."
	}
	title = padTitle(title)

	var indicator string
	if props.Task.HasLink() {
		indicator = LinkStyle.Render("⛓")
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Render(shortID(props.Task.ID.String()))

	content := lipgloss.NewStyle().Bold(true).Render(" "+title) + indicator + "\n " + footer

	style := TaskStyle
	switch {
	case props.Dragging:
		style = style.BorderForeground(lipgloss.Color(theme.DragBorder)).Border(lipgloss.DoubleBorder())
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder)).Border(lipgloss.ThickBorder())
	}
	return style.Render(content)
}

// RenderDropSlot is the placeholder drawn where a carried card would land
func RenderDropSlot() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.DragBorder)).
		Render(strings.Repeat("┄", taskCardWidth))
}

func padTitle(title string) string {
	n := len([]rune(title))
	if n < taskTitlePaddedLength {
		return title + strings.Repeat(" ", taskTitlePaddedLength-n)
	}
	return title
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
