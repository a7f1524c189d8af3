package board

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/types"
)

// Command is a normalized board mutation produced by a gesture. The set is closed:
// ReorderColumns, ReorderWithinColumn and MoveTask.
type Command interface {
	fmt.Stringer
	command()
}

// ReorderColumns lays the columns out left to right in the given order
type ReorderColumns struct {
	ColumnIDs []types.ColumnID
}

// ReorderWithinColumn moves a card inside its lane. It is never persisted.
type ReorderWithinColumn struct {
	ColumnID types.ColumnID
	TaskID   types.TaskID
	From     int
	To       int
}

// MoveTask moves a card to another column, changing its status
type MoveTask struct {
	TaskID    types.TaskID
	Source    types.ColumnID
	Dest      types.ColumnID
	DestIndex int
}

func (ReorderColumns) command()      {}
func (ReorderWithinColumn) command() {}
func (MoveTask) command()            {}

func (c ReorderColumns) String() string {
	return fmt.Sprintf("reorder columns %v", c.ColumnIDs)
}

func (c ReorderWithinColumn) String() string {
	return fmt.Sprintf("reorder task %s in %s from %d to %d", c.TaskID, c.ColumnID, c.From, c.To)
}

func (c MoveTask) String() string {
	return fmt.Sprintf("move task %s from %s to %s at %d", c.TaskID, c.Source, c.Dest, c.DestIndex)
}
