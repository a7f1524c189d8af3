package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tablero-test.db")
	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, path
}

// ============================================================================
// FIXTURES
// ============================================================================

// seedBoard creates a board with the given column titles, the last one being terminal
func seedBoard(t *testing.T, repo *Repository, titles ...string) (*models.Board, []*models.Column) {
	t.Helper()
	board := &models.Board{ID: types.NewBoardID(), Name: "Test Board"}
	columns := make([]*models.Column, len(titles))
	for i, title := range titles {
		columns[i] = &models.Column{
			ID:        types.NewColumnID(),
			Title:     title,
			Color:     models.ColorBlue,
			IsDefault: true,
		}
	}
	if len(columns) > 0 {
		terminal := columns[len(columns)-1].ID
		board.TerminalColumnID = &terminal
	}
	if err := repo.CreateBoard(context.Background(), board, columns); err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	return board, columns
}

// seedTask creates a task in the given column
func seedTask(t *testing.T, repo *Repository, boardID types.BoardID, status types.ColumnID, title string) *models.Task {
	t.Helper()
	task := &models.Task{
		ID:      types.NewTaskID(),
		BoardID: boardID,
		Status:  status,
		Title:   title,
	}
	if err := repo.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	return task
}

// columnOrders returns title -> order for quick assertions
func columnOrders(t *testing.T, repo *Repository, boardID types.BoardID) map[string]int {
	t.Helper()
	cols, err := repo.GetColumnsByBoard(context.Background(), boardID)
	if err != nil {
		t.Fatalf("Failed to get columns: %v", err)
	}
	orders := make(map[string]int, len(cols))
	for _, c := range cols {
		orders[c.Title] = c.Order
	}
	return orders
}
