package modelops

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// taskViewChrome is the screen height taken by the box, title and metadata
const taskViewChrome = 14

// OpenTaskView shows the selected task with its description in a scrollable pane
func OpenTaskView(m *tui.Model) {
	task, ok := m.CurrentTask()
	if !ok {
		return
	}
	m.ViewedTask = &task
	SizeTaskView(m)
	m.TaskView.GotoTop()
	m.UiState.SetMode(state.TaskViewMode)
}

// SizeTaskView fits the description pane to the screen; it is re-run on resize
func SizeTaskView(m *tui.Model) {
	if m.ViewedTask == nil {
		return
	}
	width := components.TaskViewContentWidth(m.UiState.Width())
	body := components.RenderDescription(components.DescriptionProps{
		Description: m.ViewedTask.Description,
		Width:       width,
	})

	m.TaskView.SetWidth(width)
	m.TaskView.SetHeight(min(lipgloss.Height(body), max(3, m.UiState.Height()-taskViewChrome)))
	m.TaskView.SetContent(body)
}

// CloseTaskView returns to the board
func CloseTaskView(m *tui.Model) {
	m.ViewedTask = nil
	m.TaskView.SetContent("")
	m.UiState.SetMode(state.NormalMode)
}
