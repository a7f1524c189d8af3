package models

import (
	"time"

	"github.com/thenoetrevino/tablero/internal/types"
)

// Board is the top-level container for columns and tasks
type Board struct {
	ID               types.BoardID
	Name             string
	TerminalColumnID *types.ColumnID // Column representing completion; guarded on entry
	CreatedAt        time.Time
}

// Terminal returns the terminal column ID, or "" when the board has none
func (b *Board) Terminal() types.ColumnID {
	if b == nil || b.TerminalColumnID == nil {
		return ""
	}
	return *b.TerminalColumnID
}
