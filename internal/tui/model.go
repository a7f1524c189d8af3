// Package tui holds the state of the interactive board. The handlers, render and
// core subpackages implement Update, View and the tea.Model wrapper on top of it.
package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/dragdrop"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/gate"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/types"
)

// NotificationTick is how often stale notifications are swept
const NotificationTick = time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Board  *gate.Gate
	Config *config.Config
	Keys   KeyMap
	Drag   *dragdrop.Controller

	UiState           *state.UIState
	InputState        *state.InputState
	NotificationState *state.NotificationState
	ConnectionState   *state.ConnectionState

	// Inbox receives gate and event client callbacks
	Inbox *Inbox

	// EventChan delivers changes made by other processes, nil without a daemon
	EventChan <-chan events.Event

	// ViewedTask is the task open in TaskViewMode; TaskView scrolls its description
	ViewedTask *models.Task
	TaskView   viewport.Model
}

// InitialModel wires a model to an open board. eventClient may be nil.
func InitialModel(ctx context.Context, a *app.App, board *gate.Gate, cfg *config.Config, eventClient events.EventPublisher) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.Theme)

	m := &Model{
		Ctx:               ctx,
		App:               a,
		Board:             board,
		Config:            cfg,
		Keys:              NewKeyMap(cfg.KeyMappings),
		Drag:              dragdrop.New(board, slog.Default().With("board_id", board.BoardID())),
		UiState:           state.NewUIState(),
		InputState:        state.NewInputState(),
		NotificationState: state.NewNotificationState(),
		ConnectionState:   state.NewConnectionState(state.Disconnected),
		Inbox:             NewInbox(),
		TaskView:          viewport.New(),
	}

	board.OnChange(m.Inbox.MarkChanged)
	board.OnError(func(err error) { m.Inbox.Push(BoardErrorMsg{Err: err}) })
	board.OnStatusChanged(func(id types.TaskID, status types.ColumnID) {
		m.Inbox.Push(StatusChangedMsg{TaskID: id, Status: status})
	})

	if eventClient != nil {
		eventClient.SetNotifyFunc(func(level, message string) {
			m.Inbox.Push(NotificationMsg{Level: level, Message: message})
		})
		if err := eventClient.Subscribe(board.BoardID().String()); err != nil {
			slog.Debug("subscription deferred until connected", "error", err)
		}
		ch, err := eventClient.Listen(ctx)
		if err != nil {
			slog.Warn("live updates disabled", "error", err)
		} else {
			m.EventChan = ch
			m.ConnectionState.SetStatus(state.Connected)
		}
	}

	return m
}

// Init starts the listeners
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.WaitForBoardMsg(), m.WaitForEvent(), ExpireNotifications())
}

// WaitForBoardMsg delivers the next gate or connection callback
func (m *Model) WaitForBoardMsg() tea.Cmd {
	return func() tea.Msg {
		return m.Inbox.Next(m.Ctx)
	}
}

// WaitForEvent delivers the next change made by another process
func (m *Model) WaitForEvent() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case event, ok := <-m.EventChan:
			if !ok {
				return NotificationMsg{Level: "error", Message: "Live updates stopped"}
			}
			return RefreshMsg{Event: event}
		case <-m.Ctx.Done():
			return nil
		}
	}
}

// ExpireNotifications schedules the next notification sweep
func ExpireNotifications() tea.Cmd {
	return tea.Tick(NotificationTick, func(time.Time) tea.Msg {
		return ExpireNotificationsMsg{}
	})
}
