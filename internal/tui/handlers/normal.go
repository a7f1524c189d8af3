package handlers

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/services/column"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/modelops"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// HandleNormalMode handles keys while navigating the board
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	k := m.Keys

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.ShowHelp):
		m.UiState.SetMode(state.HelpMode)

	case key.Matches(msg, k.PrevColumn):
		if m.UiState.SelectedColumn() == 0 {
			m.NotificationState.Add(state.LevelInfo, "Already at the first column")
			return nil
		}
		m.Select(m.UiState.SelectedColumn()-1, 0)
	case key.Matches(msg, k.NextColumn):
		if m.UiState.SelectedColumn() >= len(m.Columns())-1 {
			m.NotificationState.Add(state.LevelInfo, "Already at the last column")
			return nil
		}
		m.Select(m.UiState.SelectedColumn()+1, 0)
	case key.Matches(msg, k.PrevTask):
		if m.UiState.SelectedTask() > 0 {
			m.Select(m.UiState.SelectedColumn(), m.UiState.SelectedTask()-1)
		}
	case key.Matches(msg, k.NextTask):
		if m.UiState.SelectedTask() < len(m.CurrentTasks())-1 {
			m.Select(m.UiState.SelectedColumn(), m.UiState.SelectedTask()+1)
		}

	case key.Matches(msg, k.GrabTask):
		modelops.GrabTask(m)
	case key.Matches(msg, k.GrabColumn):
		modelops.GrabColumn(m)

	case key.Matches(msg, k.CreateColumn):
		m.UiState.SetMode(state.AddColumnMode)
		return m.InputState.Start("New column", "")
	case key.Matches(msg, k.RenameColumn):
		col := m.CurrentColumn()
		if col == nil {
			return nil
		}
		m.UiState.SetMode(state.RenameColumnMode)
		return m.InputState.Start("Rename column", col.Title)
	case key.Matches(msg, k.RecolorColumn):
		modelops.RecolorCurrentColumn(m)
	case key.Matches(msg, k.DeleteColumn):
		if m.CurrentColumn() == nil {
			return nil
		}
		m.InputState.DeleteColumnTaskCount = len(m.CurrentTasks())
		m.UiState.SetMode(state.DeleteColumnConfirmMode)
	case key.Matches(msg, k.MoveColumnLeft):
		modelops.SwapCurrentColumn(m, column.Left)
	case key.Matches(msg, k.MoveColumnRight):
		modelops.SwapCurrentColumn(m, column.Right)

	case key.Matches(msg, k.ViewTask):
		modelops.OpenTaskView(m)
	case key.Matches(msg, k.Refresh):
		modelops.Reload(m)
	}
	return nil
}
