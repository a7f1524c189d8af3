package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/dragdrop"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/modelops"
	"github.com/thenoetrevino/tablero/internal/tui/notifications"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// ViewKanbanBoard renders the header, the visible columns and the status bar
func ViewKanbanBoard(m *tui.Model) string {
	header := renderHeader(m)
	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:      m.UiState.Width(),
		Mode:       m.UiState.Mode().String(),
		Detail:     modelops.DragDetail(m),
		Connection: connectionLabel(m),
	})

	columns := m.Columns()
	if len(columns) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Render("This board has no columns. Press " + m.Config.KeyMappings.CreateColumn + " to add one.")
		return lipgloss.JoinVertical(lipgloss.Left, header, "", empty, "", footer)
	}

	gesture, dragging := m.Drag.Active()
	terminal := m.Board.Terminal()
	start := m.UiState.ViewportOffset()
	end := min(start+m.UiState.ViewportSize(), len(columns))

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		col := columns[i]
		selected := i == m.UiState.SelectedColumn()
		selectedTask := -1
		if selected {
			selectedTask = m.UiState.SelectedTask()
		}

		props := components.ColumnProps{
			Column:       col,
			Tasks:        m.Board.Lane(col.ID),
			Terminal:     col.ID == terminal,
			Selected:     selected && !dragging,
			SelectedTask: selectedTask,
			Height:       m.UiState.ContentHeight(),
			ScrollOffset: m.UiState.TaskScrollOffset(col.ID),
			MaxVisible:   m.UiState.VisibleTasks(),
			DropIndex:    -1,
		}
		if dragging {
			applyDrag(&props, gesture, i)
		}
		rendered = append(rendered, components.RenderColumn(props), " ")
	}

	left, right := " ", " "
	if start > 0 {
		left = components.IndicatorStyle.Render("◀")
	}
	if end < len(columns) {
		right = components.IndicatorStyle.Render("▶")
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", lipgloss.JoinHorizontal(lipgloss.Top, rendered...), right)

	content := lipgloss.JoinVertical(lipgloss.Left, header, board)
	lines := strings.Split(content, "\n")
	if maxLines := max(m.UiState.Height()-1, 1); len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n") + "\n" + footer
}

func applyDrag(props *components.ColumnProps, g dragdrop.Gesture, idx int) {
	switch g.Kind {
	case dragdrop.ColumnDrag:
		props.Carried = props.Column.ID == g.ColumnID
		props.DropTarget = g.Hover.Index == idx && !props.Carried
	case dragdrop.TaskDrag:
		props.DraggedID = g.TaskID
		if props.Column.ID == g.Hover.ColumnID {
			props.DropTarget = true
			props.DropIndex = g.Hover.Index
		}
	}
}

func renderHeader(m *tui.Model) string {
	name := m.Board.BoardID().String()
	if b := m.Board.Board(); b != nil {
		name = b.Name
	}
	title := components.TitleStyle.
		Foreground(lipgloss.Color(theme.Accent)).
		Render(" " + name)

	if orphans := len(m.Board.Orphans()); orphans > 0 {
		title += components.WarningBannerStyle.Render(fmt.Sprintf("%d task(s) in unknown columns", orphans))
	}

	return title + notifications.RenderAll(m.NotificationState.All()) + "\n"
}

func connectionLabel(m *tui.Model) string {
	if m.EventChan == nil {
		return ""
	}
	return m.ConnectionState.Status().String()
}
