package models

import "github.com/thenoetrevino/tablero/internal/types"

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done")
// Columns are ordered left to right by Order, which is dense and unique per board
type Column struct {
	ID        types.ColumnID // Stable identity; doubles as the status of tasks in this column
	BoardID   types.BoardID  // Board the column belongs to
	Title     string         // Display name of the column
	Color     Color          // Palette token used to tint the header
	Order     int            // Left-to-right position, starting at 0
	IsDefault bool           // Provisioned by the system, cannot be deleted
}

// Clone returns a copy of the column that can be mutated independently
func (c *Column) Clone() *Column {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
