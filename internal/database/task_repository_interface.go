package database

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTaskByID(ctx context.Context, id types.TaskID) (*models.Task, error)
	GetTasksByBoard(ctx context.Context, boardID types.BoardID) ([]*models.Task, error)
	GetTasksByStatus(ctx context.Context, boardID types.BoardID, status types.ColumnID) ([]*models.Task, error)
	CountTasksByStatus(ctx context.Context, status types.ColumnID) (int, error)
	GetTaskStatus(ctx context.Context, id types.TaskID) (types.ColumnID, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTaskStatus(ctx context.Context, id types.TaskID, status types.ColumnID) error
	SetTaskLink(ctx context.Context, id types.TaskID, linked *types.TaskID) error
	DeleteTask(ctx context.Context, id types.TaskID) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
