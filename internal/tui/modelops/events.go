package modelops

import (
	"log/slog"
	"strings"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ApplyRemote reloads the board when another process changed it
func ApplyRemote(m *tui.Model, event events.Event) {
	if err := m.Board.HandleRemote(m.Ctx, event); err != nil {
		slog.Error("failed to apply remote change", "board_id", m.Board.BoardID(), "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to refresh board")
		return
	}
	m.ClampSelection()
}

// ApplyConnectionNotice records a message from the event client and updates the connection status
func ApplyConnectionNotice(m *tui.Model, msg tui.NotificationMsg) {
	level := state.LevelInfo
	switch msg.Level {
	case "error":
		level = state.LevelError
		m.ConnectionState.SetStatus(state.Disconnected)
	case "warning":
		level = state.LevelWarning
		m.ConnectionState.SetStatus(state.Reconnecting)
	default:
		if strings.HasPrefix(msg.Message, "Reconnected") {
			m.ConnectionState.SetStatus(state.Connected)
		}
	}
	m.NotificationState.Add(level, msg.Message)
}
