package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db *sql.DB
}

func scanBoard(row interface{ Scan(...any) error }) (*models.Board, error) {
	board := &models.Board{}
	var terminal sql.NullString
	if err := row.Scan(&board.ID, &board.Name, &terminal, &board.CreatedAt); err != nil {
		return nil, err
	}
	board.TerminalColumnID = nullStringToColumnID(terminal)
	return board, nil
}

// CreateBoard inserts a board together with its initial columns.
// Columns are stored in slice order; board.TerminalColumnID may point at one of them.
func (r *BoardRepo) CreateBoard(ctx context.Context, board *models.Board, columns []*models.Column) error {
	now := time.Now().UTC()
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO boards (id, name, created_at) VALUES (?, ?, ?)`,
			string(board.ID), board.Name, now,
		); err != nil {
			return fmt.Errorf("failed to insert board '%s': %w", board.Name, err)
		}

		for i, col := range columns {
			col.BoardID = board.ID
			col.Order = i
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO columns (id, board_id, title, color, ord, is_default) VALUES (?, ?, ?, ?, ?, ?)`,
				string(col.ID), string(board.ID), col.Title, string(col.Color), i, col.IsDefault,
			); err != nil {
				return fmt.Errorf("failed to create default column '%s' for board %s: %w", col.Title, board.ID, err)
			}
		}

		if board.TerminalColumnID != nil {
			if _, err := tx.ExecContext(ctx,
				`UPDATE boards SET terminal_column_id = ? WHERE id = ?`,
				string(*board.TerminalColumnID), string(board.ID),
			); err != nil {
				return fmt.Errorf("failed to set terminal column: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	board.CreatedAt = now
	return nil
}

// GetBoardByID retrieves a board by its ID
func (r *BoardRepo) GetBoardByID(ctx context.Context, id types.BoardID) (*models.Board, error) {
	board, err := scanBoard(r.db.QueryRowContext(ctx,
		`SELECT id, name, terminal_column_id, created_at FROM boards WHERE id = ?`, string(id)))
	if err != nil {
		return nil, notFound(err, "board", id)
	}
	return board, nil
}

// GetAllBoards retrieves every board in creation order
func (r *BoardRepo) GetAllBoards(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, terminal_column_id, created_at FROM boards ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer rows.Close()

	boards := []*models.Board{}
	for rows.Next() {
		board, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning board row: %w", err)
		}
		boards = append(boards, board)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating board rows: %w", err)
	}
	return boards, nil
}

// SetTerminalColumn designates the column guarded on entry. A nil column clears it.
func (r *BoardRepo) SetTerminalColumn(ctx context.Context, id types.BoardID, columnID *types.ColumnID) error {
	var param any
	if columnID != nil {
		param = string(*columnID)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE boards SET terminal_column_id = ? WHERE id = ?`, param, string(id))
	if err != nil {
		return fmt.Errorf("failed to set terminal column of board %s: %w", id, err)
	}
	return requireAffected(res, "board", id)
}

// DeleteBoard removes a board; columns and tasks cascade
func (r *BoardRepo) DeleteBoard(ctx context.Context, id types.BoardID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete board %s: %w", id, err)
	}
	return requireAffected(res, "board", id)
}
