package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/modelops"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// HandleDeleteColumnConfirm waits for y or n
func HandleDeleteColumnConfirm(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		m.InputState.Clear()
		m.UiState.SetMode(state.NormalMode)
		modelops.DeleteCurrentColumn(m)
	case "n", "N", "esc":
		m.InputState.Clear()
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}
