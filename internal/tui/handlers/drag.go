package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/modelops"
)

// HandleDragMode moves the drop target until the gesture is dropped or cancelled
func HandleDragMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	k := m.Keys

	switch {
	case key.Matches(msg, k.Cancel, k.Quit):
		modelops.CancelDrag(m)
	case key.Matches(msg, k.Drop, k.GrabTask, k.GrabColumn):
		modelops.Drop(m)
	case key.Matches(msg, k.PrevColumn):
		modelops.MoveHover(m, -1, 0)
	case key.Matches(msg, k.NextColumn):
		modelops.MoveHover(m, 1, 0)
	case key.Matches(msg, k.PrevTask):
		modelops.MoveHover(m, 0, -1)
	case key.Matches(msg, k.NextTask):
		modelops.MoveHover(m, 0, 1)
	}
	return nil
}
