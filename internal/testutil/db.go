// Package testutil provides shared fixtures for package tests
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestRepo returns a repository over a fresh in-memory database
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t))
}

// TestBoard is a seeded board with its columns in order
type TestBoard struct {
	Board   *models.Board
	Columns []*models.Column
}

// ID returns the board id
func (b TestBoard) ID() types.BoardID {
	return b.Board.ID
}

// Col returns the id of the column with the given title
func (b TestBoard) Col(title string) types.ColumnID {
	for _, c := range b.Columns {
		if c.Title == title {
			return c.ID
		}
	}
	return ""
}

// CreateTestBoard creates a board with default columns "To Do", "In Progress" and
// "Done", Done being terminal
func CreateTestBoard(t *testing.T, repo database.BoardRepository, name string) TestBoard {
	t.Helper()
	return CreateTestBoardWithColumns(t, repo, name, "To Do", "In Progress", "Done")
}

// CreateTestBoardWithColumns creates a board whose last column is terminal.
// The seeded columns are marked default.
func CreateTestBoardWithColumns(t *testing.T, repo database.BoardRepository, name string, titles ...string) TestBoard {
	t.Helper()
	board := &models.Board{ID: types.NewBoardID(), Name: name}
	columns := make([]*models.Column, len(titles))
	for i, title := range titles {
		columns[i] = &models.Column{
			ID:        types.NewColumnID(),
			BoardID:   board.ID,
			Title:     title,
			Color:     models.Palette[i%len(models.Palette)],
			Order:     i,
			IsDefault: true,
		}
	}
	if len(columns) > 0 {
		terminal := columns[len(columns)-1].ID
		board.TerminalColumnID = &terminal
	}
	if err := repo.CreateBoard(context.Background(), board, columns); err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	return TestBoard{Board: board, Columns: columns}
}

// CreateTestColumn appends a non-default column to a board
func CreateTestColumn(t *testing.T, repo database.ColumnRepository, boardID types.BoardID, title string) *models.Column {
	t.Helper()
	col := &models.Column{
		ID:      types.NewColumnID(),
		BoardID: boardID,
		Title:   title,
		Color:   models.ColorGray,
	}
	if err := repo.AppendColumn(context.Background(), col); err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return col
}

// CreateTestTask creates a task in the given column
func CreateTestTask(t *testing.T, repo database.TaskRepository, boardID types.BoardID, status types.ColumnID, title string) *models.Task {
	t.Helper()
	task := &models.Task{
		ID:      types.NewTaskID(),
		BoardID: boardID,
		Status:  status,
		Title:   title,
	}
	if err := repo.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

// LinkTestTasks makes task depend on dependency
func LinkTestTasks(t *testing.T, repo database.TaskRepository, task, dependency types.TaskID) {
	t.Helper()
	if err := repo.SetTaskLink(context.Background(), task, &dependency); err != nil {
		t.Fatalf("Failed to link tasks: %v", err)
	}
}
