package database

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// BoardReader defines read operations for boards.
type BoardReader interface {
	GetBoardByID(ctx context.Context, id types.BoardID) (*models.Board, error)
	GetAllBoards(ctx context.Context) ([]*models.Board, error)
}

// BoardWriter defines write operations for boards.
type BoardWriter interface {
	CreateBoard(ctx context.Context, board *models.Board, columns []*models.Column) error
	SetTerminalColumn(ctx context.Context, id types.BoardID, columnID *types.ColumnID) error
	DeleteBoard(ctx context.Context, id types.BoardID) error
}

// BoardRepository combines all board-related operations.
type BoardRepository interface {
	BoardReader
	BoardWriter
}
