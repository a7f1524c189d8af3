package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/modelops"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// HandleInputMode feeds keys to the column title dialog
func HandleInputMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		closeInput(m)
		return nil

	case "enter":
		if m.InputState.IsEmpty() {
			m.NotificationState.Add(state.LevelWarning, "Column title cannot be empty")
			return nil
		}
		title := m.InputState.TrimmedValue()
		mode := m.UiState.Mode()
		changed := m.InputState.Changed()
		closeInput(m)

		switch {
		case mode == state.AddColumnMode:
			modelops.CreateColumn(m, title)
		case changed:
			modelops.RenameCurrentColumn(m, title)
		}
		return nil
	}

	return m.InputState.Update(msg)
}

func closeInput(m *tui.Model) {
	m.InputState.Clear()
	m.UiState.SetMode(state.NormalMode)
}
