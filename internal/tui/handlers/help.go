package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/modelops"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// HandleHelpMode closes the help screen
func HandleHelpMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.Keys.Close, m.Keys.ShowHelp) {
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// HandleTaskViewMode closes the task view; other keys scroll the description
func HandleTaskViewMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.Keys.Close, m.Keys.ViewTask) || msg.String() == "enter" {
		modelops.CloseTaskView(m)
		return nil
	}
	var cmd tea.Cmd
	m.TaskView, cmd = m.TaskView.Update(msg)
	return cmd
}
