package models

import (
	"time"

	"github.com/thenoetrevino/tablero/internal/types"
)

// Task represents a single card on the board.
// The board engine only ever changes Status; every other field is payload owned by
// collaborators outside the engine.
type Task struct {
	ID           types.TaskID
	BoardID      types.BoardID
	Status       types.ColumnID // ID of the column holding the task
	LinkedTaskID *types.TaskID  // Predecessor dependency, nil when the task has none
	Title        string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasLink reports whether the task declares a dependency on another task
func (t Task) HasLink() bool {
	return t.LinkedTaskID != nil && *t.LinkedTaskID != ""
}

// Clone returns a deep copy of the task
func (t Task) Clone() Task {
	if t.LinkedTaskID != nil {
		linked := *t.LinkedTaskID
		t.LinkedTaskID = &linked
	}
	return t
}
