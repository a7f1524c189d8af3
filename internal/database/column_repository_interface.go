package database

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ColumnReader defines read operations for columns.
type ColumnReader interface {
	GetColumnsByBoard(ctx context.Context, boardID types.BoardID) ([]*models.Column, error)
	GetColumnByID(ctx context.Context, id types.ColumnID) (*models.Column, error)
}

// ColumnWriter defines write operations for columns.
type ColumnWriter interface {
	AppendColumn(ctx context.Context, col *models.Column) error
	UpdateColumnTitle(ctx context.Context, id types.ColumnID, title string) error
	UpdateColumnColor(ctx context.Context, id types.ColumnID, color models.Color) error
	DeleteColumn(ctx context.Context, id types.ColumnID) error
	UpdateColumnOrders(ctx context.Context, boardID types.BoardID, orders map[types.ColumnID]int) error
}

// ColumnRepository combines all column-related operations.
type ColumnRepository interface {
	ColumnReader
	ColumnWriter
}
