package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db *sql.DB
}

const columnFields = `id, board_id, title, color, ord, is_default`

func scanColumn(row interface{ Scan(...any) error }) (*models.Column, error) {
	col := &models.Column{}
	var color string
	if err := row.Scan(&col.ID, &col.BoardID, &col.Title, &color, &col.Order, &col.IsDefault); err != nil {
		return nil, err
	}
	col.Color = models.Color(color)
	return col, nil
}

// AppendColumn inserts col at the right edge of its board.
// col.Order is overwritten with the board's current column count.
func (r *ColumnRepo) AppendColumn(ctx context.Context, col *models.Column) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM columns WHERE board_id = ?`, string(col.BoardID),
		).Scan(&count); err != nil {
			return fmt.Errorf("counting columns for board %s: %w", col.BoardID, err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO columns (id, board_id, title, color, ord, is_default) VALUES (?, ?, ?, ?, ?, ?)`,
			string(col.ID), string(col.BoardID), col.Title, string(col.Color), count, col.IsDefault,
		); err != nil {
			return fmt.Errorf("failed to insert column '%s': %w", col.Title, err)
		}

		col.Order = count
		return nil
	})
}

// GetColumnsByBoard retrieves all columns for a board ordered left to right
func (r *ColumnRepo) GetColumnsByBoard(ctx context.Context, boardID types.BoardID) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+columnFields+` FROM columns WHERE board_id = ? ORDER BY ord`,
		string(boardID))
	if err != nil {
		return nil, fmt.Errorf("querying columns for board: %w", err)
	}
	defer rows.Close()

	columns := []*models.Column{}
	for rows.Next() {
		col, err := scanColumn(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}
	return columns, nil
}

// GetColumnByID retrieves a column by its ID
func (r *ColumnRepo) GetColumnByID(ctx context.Context, id types.ColumnID) (*models.Column, error) {
	col, err := scanColumn(r.db.QueryRowContext(ctx,
		`SELECT `+columnFields+` FROM columns WHERE id = ?`, string(id)))
	if err != nil {
		return nil, notFound(err, "column", id)
	}
	return col, nil
}

// UpdateColumnTitle renames a column in place
func (r *ColumnRepo) UpdateColumnTitle(ctx context.Context, id types.ColumnID, title string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE columns SET title = ? WHERE id = ?`, title, string(id))
	if err != nil {
		return fmt.Errorf("failed to rename column %s: %w", id, err)
	}
	return requireAffected(res, "column", id)
}

// UpdateColumnColor recolors a column in place
func (r *ColumnRepo) UpdateColumnColor(ctx context.Context, id types.ColumnID, color models.Color) error {
	res, err := r.db.ExecContext(ctx, `UPDATE columns SET color = ? WHERE id = ?`, string(color), string(id))
	if err != nil {
		return fmt.Errorf("failed to recolor column %s: %w", id, err)
	}
	return requireAffected(res, "column", id)
}

// DeleteColumn removes an empty column and closes the gap it leaves in the board's
// ordering. The emptiness check runs in the same transaction as the delete.
func (r *ColumnRepo) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var boardID types.BoardID
		var ord int
		err := tx.QueryRowContext(ctx,
			`SELECT board_id, ord FROM columns WHERE id = ?`, string(id),
		).Scan(&boardID, &ord)
		if err != nil {
			return notFound(err, "column", id)
		}

		var count int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM tasks WHERE status = ?`, string(id),
		).Scan(&count); err != nil {
			return fmt.Errorf("counting tasks in column %s: %w", id, err)
		}
		if count > 0 {
			return fmt.Errorf("column %s holds %d task(s): %w", id, count, ErrColumnNotEmpty)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM columns WHERE id = ?`, string(id)); err != nil {
			return fmt.Errorf("failed to delete column %s: %w", id, err)
		}

		// Shift everything right of the hole one step left, via negative scratch values
		if _, err := tx.ExecContext(ctx,
			`UPDATE columns SET ord = -ord WHERE board_id = ? AND ord > ?`, string(boardID), ord,
		); err != nil {
			return fmt.Errorf("failed to compact column order: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE columns SET ord = -ord - 1 WHERE board_id = ? AND ord < 0`, string(boardID),
		); err != nil {
			return fmt.Errorf("failed to compact column order: %w", err)
		}
		return nil
	})
}

// UpdateColumnOrders writes new order values for the given columns in one transaction.
// Only the listed columns are touched; an adjacent swap therefore writes two rows.
func (r *ColumnRepo) UpdateColumnOrders(ctx context.Context, boardID types.BoardID, orders map[types.ColumnID]int) error {
	if len(orders) == 0 {
		return nil
	}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		// Phase 1: park every moving column on a unique negative value so the
		// (board_id, ord) index never sees a transient duplicate.
		for id, ord := range orders {
			res, err := tx.ExecContext(ctx,
				`UPDATE columns SET ord = ? WHERE id = ? AND board_id = ?`,
				-(ord + 1), string(id), string(boardID),
			)
			if err != nil {
				return fmt.Errorf("failed to reorder column %s: %w", id, err)
			}
			if err := requireAffected(res, "column", id); err != nil {
				return err
			}
		}

		// Phase 2: flip the parked values to their final position
		if _, err := tx.ExecContext(ctx,
			`UPDATE columns SET ord = -ord - 1 WHERE board_id = ? AND ord < 0`, string(boardID),
		); err != nil {
			return fmt.Errorf("failed to finalize column order: %w", err)
		}
		return nil
	})
}
