// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath returns the database location used when the config does not set one
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tablero", "tablero.db"), nil
}

// InitDB opens the database at path (DefaultPath when empty), applies pragmas and
// runs migrations.
func InitDB(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := configure(ctx, db); err != nil {
		closeQuietly(db)
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// SQLite benefits from a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// OpenMemory opens a private in-memory database with the full schema.
func OpenMemory(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// every pooled connection to :memory: would get its own empty database
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func configure(ctx context.Context, db *sql.DB) error {
	pragmas := []struct {
		stmt string
		desc string
	}{
		// Required for CASCADE deletions
		{"PRAGMA foreign_keys = ON", "enable foreign keys"},
		{"PRAGMA journal_mode = WAL", "enable WAL mode"},
		// SQLite will retry for this duration before reporting SQLITE_BUSY
		{"PRAGMA busy_timeout = 5000", "set busy timeout"},
	}

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p.stmt); err != nil {
			slog.Error("Failed to "+p.desc, "error", err)
			return fmt.Errorf("failed to %s: %w", p.desc, err)
		}
	}
	return nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
