package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// ColumnProps describes one lane on screen
type ColumnProps struct {
	Column       *models.Column
	Tasks        []models.Task
	Terminal     bool
	Selected     bool
	SelectedTask int // index of the selected card, -1 when the column is not selected
	Height       int // total box height, 0 for auto
	ScrollOffset int
	MaxVisible   int

	// Drag feedback
	Carried    bool         // this column is being dragged
	DropTarget bool         // a carried card or column is hovering here
	DropIndex  int          // slot a carried card would land in, -1 for none
	DraggedID  types.TaskID // card being carried, if any
}

// RenderColumn renders a column header and its visible cards
//
//	● {Title} ({count}) ✓
//	▲ more above
//	{Task 1}
//	{Task 2}
//	▼ more below
func RenderColumn(props ColumnProps) string {
	header := renderColumnHeader(props)
	lines := []string{header}

	if len(props.Tasks) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0).
			Render("No tasks")
		if props.DropTarget && props.DropIndex >= 0 {
			empty = RenderDropSlot()
		}
		lines = append(lines, empty)
		return columnBox(props).Render(strings.Join(lines, "\n"))
	}

	maxVisible := max(props.MaxVisible, 1)
	offset := min(max(props.ScrollOffset, 0), len(props.Tasks)-1)
	end := min(offset+maxVisible, len(props.Tasks))

	if offset > 0 {
		lines = append(lines, IndicatorStyle.Render("▲ more above"))
	} else {
		lines = append(lines, "")
	}

	for i := offset; i < end; i++ {
		if props.DropTarget && props.DropIndex == i {
			lines = append(lines, RenderDropSlot())
		}
		task := props.Tasks[i]
		lines = append(lines, RenderTask(TaskProps{
			Task:     task,
			Selected: props.Selected && i == props.SelectedTask,
			Dragging: task.ID == props.DraggedID,
		}))
	}
	if props.DropTarget && props.DropIndex >= end {
		lines = append(lines, RenderDropSlot())
	}

	if end < len(props.Tasks) {
		lines = append(lines, IndicatorStyle.Render("▼ more below"))
	}

	return columnBox(props).Render(strings.Join(lines, "\n"))
}

func renderColumnHeader(props ColumnProps) string {
	dot := lipgloss.NewStyle().
		Foreground(lipgloss.Color(props.Column.Color.Hex())).
		Render("●")
	title := TitleStyle.
		Foreground(lipgloss.Color(props.Column.Color.Hex())).
		Render(fmt.Sprintf("%s (%d)", props.Column.Title, len(props.Tasks)))

	header := dot + " " + title
	if props.Terminal {
		header += lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(" ✓")
	}
	return header
}

func columnBox(props ColumnProps) lipgloss.Style {
	style := ColumnStyle
	switch {
	case props.Carried:
		style = style.BorderForeground(lipgloss.Color(theme.DragBorder)).Border(lipgloss.DoubleBorder())
	case props.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DragBorder))
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		style = style.Height(props.Height)
	}
	return style
}
