package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// ErrColumnNotEmpty is returned when deleting a column that still holds tasks
var ErrColumnNotEmpty = errors.New("column still holds tasks")

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// notFound maps sql.ErrNoRows onto models.ErrNotFound, leaving other errors wrapped as-is
func notFound(err error, entity string, id any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, models.ErrNotFound)
	}
	return fmt.Errorf("failed to load %s %v: %w", entity, id, err)
}

// requireAffected turns a zero-row update into models.ErrNotFound
func requireAffected(res sql.Result, entity string, id any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %v: %w", entity, id, models.ErrNotFound)
	}
	return nil
}

// nullStringToTaskID converts sql.NullString to *types.TaskID.
// Returns nil if the value is not valid.
func nullStringToTaskID(ns sql.NullString) *types.TaskID {
	if ns.Valid && ns.String != "" {
		id := types.TaskID(ns.String)
		return &id
	}
	return nil
}

// nullStringToColumnID converts sql.NullString to *types.ColumnID.
func nullStringToColumnID(ns sql.NullString) *types.ColumnID {
	if ns.Valid && ns.String != "" {
		id := types.ColumnID(ns.String)
		return &id
	}
	return nil
}

// taskIDParam converts an optional task ID into a driver value
func taskIDParam(id *types.TaskID) any {
	if id == nil || *id == "" {
		return nil
	}
	return string(*id)
}
