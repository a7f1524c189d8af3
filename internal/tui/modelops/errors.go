package modelops

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/gate"
	"github.com/thenoetrevino/tablero/internal/guard"
	"github.com/thenoetrevino/tablero/internal/services/column"
	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/types"
)

// UserMessage turns an error into something fit for the notification line
func UserMessage(m *tui.Model, err error) string {
	var depErr *guard.DependencyError
	var persistErr *gate.PersistenceError

	switch {
	case errors.As(err, &depErr):
		return fmt.Sprintf("%s is blocked: %s is still in %s",
			taskTitle(m, depErr.TaskID), taskTitle(m, depErr.DependencyID), columnTitle(m, depErr.DependencyStatus))
	case errors.As(err, &persistErr):
		return "Could not save the change, the board was restored"
	case errors.Is(err, column.ErrDefaultColumnProtected):
		return "Default columns cannot be deleted"
	case errors.Is(err, column.ErrColumnNotEmpty):
		return "Move the tasks out of this column before deleting it"
	case errors.Is(err, column.ErrEmptyTitle), errors.Is(err, column.ErrTitleTooLong):
		return capitalize(err.Error())
	case errors.Is(err, board.ErrUnknownTask), errors.Is(err, board.ErrUnknownColumn):
		return "The board changed, try again"
	default:
		return capitalize(err.Error())
	}
}

func taskTitle(m *tui.Model, id types.TaskID) string {
	if t, ok := m.Board.Task(id); ok {
		return fmt.Sprintf("%q", t.Title)
	}
	return "task " + id.String()
}

func columnTitle(m *tui.Model, id types.ColumnID) string {
	for _, col := range m.Columns() {
		if col.ID == id {
			return col.Title
		}
	}
	return id.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
