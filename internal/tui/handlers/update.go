// Package handlers implements the Update half of the board TUI
package handlers

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/modelops"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.ClampSelection()
		modelops.SizeTaskView(m)
		return nil

	case tui.BoardChangedMsg:
		m.ClampSelection()
		return m.WaitForBoardMsg()

	case tui.BoardErrorMsg:
		m.NotificationState.Add(state.LevelError, modelops.UserMessage(m, msg.Err))
		m.ClampSelection()
		return m.WaitForBoardMsg()

	case tui.StatusChangedMsg:
		if t, ok := m.Board.Task(msg.TaskID); ok {
			if col := columnTitle(m, msg); col != "" {
				m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Moved %q to %s", t.Title, col))
			}
		}
		return m.WaitForBoardMsg()

	case tui.NotificationMsg:
		modelops.ApplyConnectionNotice(m, msg)
		return m.WaitForBoardMsg()

	case tui.RefreshMsg:
		modelops.ApplyRemote(m, msg.Event)
		return m.WaitForEvent()

	case tui.ExpireNotificationsMsg:
		m.NotificationState.Expire()
		return tui.ExpireNotifications()
	}

	return nil
}

// HandleKeyMsg dispatches key messages to the appropriate mode handler.
func HandleKeyMsg(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.UiState.Mode() {
	case state.NormalMode:
		return HandleNormalMode(m, msg)
	case state.DragMode:
		return HandleDragMode(m, msg)
	case state.AddColumnMode, state.RenameColumnMode:
		return HandleInputMode(m, msg)
	case state.DeleteColumnConfirmMode:
		return HandleDeleteColumnConfirm(m, msg)
	case state.HelpMode:
		return HandleHelpMode(m, msg)
	case state.TaskViewMode:
		return HandleTaskViewMode(m, msg)
	}
	return nil
}

func columnTitle(m *tui.Model, msg tui.StatusChangedMsg) string {
	for _, c := range m.Columns() {
		if c.ID == msg.Status {
			return c.Title
		}
	}
	return ""
}
