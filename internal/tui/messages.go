package tui

import (
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/types"
)

// BoardChangedMsg is sent whenever the gate's state changes
type BoardChangedMsg struct{}

// BoardErrorMsg carries an error the gate reported, such as a blocked move or a failed write
type BoardErrorMsg struct {
	Err error
}

// StatusChangedMsg is sent once a cross-column move has been saved
type StatusChangedMsg struct {
	TaskID types.TaskID
	Status types.ColumnID
}

// RefreshMsg carries a change another process made
type RefreshMsg struct {
	Event events.Event
}

// NotificationMsg is a connection status message from the event client
type NotificationMsg struct {
	Level   string // "info", "warning" or "error"
	Message string
}

// ExpireNotificationsMsg asks the model to drop stale notifications
type ExpireNotificationsMsg struct{}
