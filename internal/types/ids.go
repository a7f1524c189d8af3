package types

import "github.com/google/uuid"

// ID types give semantic meaning to the string identifiers passed around the engine.
// A ColumnID doubles as the status value of every task that sits in that column.

// BoardID identifies a board
type BoardID string

// ColumnID identifies a column within a board
type ColumnID string

// TaskID identifies a task
type TaskID string

// NewBoardID generates a fresh board identifier
func NewBoardID() BoardID {
	return BoardID(uuid.NewString())
}

// NewColumnID generates a fresh column identifier
func NewColumnID() ColumnID {
	return ColumnID(uuid.NewString())
}

// NewTaskID generates a fresh task identifier
func NewTaskID() TaskID {
	return TaskID(uuid.NewString())
}

func (id BoardID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}

func (id TaskID) String() string {
	return string(id)
}

// ColumnIDs converts raw strings into column identifiers, preserving order
func ColumnIDs(raw []string) []ColumnID {
	ids := make([]ColumnID, len(raw))
	for i, s := range raw {
		ids[i] = ColumnID(s)
	}
	return ids
}
