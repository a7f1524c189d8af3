package notifications

import (
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// FromLevel maps a stored notification level to its severity
func FromLevel(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}

func (s Severity) icon() string {
	switch s {
	case Warning:
		return "⚠"
	case Error:
		return "✕"
	default:
		return "•"
	}
}

func (s Severity) foreground() string {
	switch s {
	case Warning:
		return theme.WarningFg
	case Error:
		return theme.ErrorFg
	default:
		return theme.InfoFg
	}
}
