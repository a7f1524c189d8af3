// Package render implements the View half of the board TUI
package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// View draws the board with the dialog for the current mode on top
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{lipgloss.NewLayer(ViewKanbanBoard(m))}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.AddColumnMode, state.RenameColumnMode:
		modal = RenderColumnInputLayer(m)
	case state.DeleteColumnConfirmMode:
		modal = RenderDeleteColumnLayer(m)
	case state.HelpMode:
		modal = RenderHelpLayer(m)
	case state.TaskViewMode:
		modal = RenderTaskViewLayer(m)
	}
	if modal != nil {
		stack = append(stack, modal)
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}
