// Package guard decides whether a card may enter the terminal column of its board
package guard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// StatusResolver looks up the current column of any task, on or off the board
type StatusResolver interface {
	GetTaskStatus(ctx context.Context, id types.TaskID) (types.ColumnID, error)
}

// Guard validates cross-column moves against the dependency rule
type Guard struct {
	resolver StatusResolver
	logger   *slog.Logger
}

// New creates a guard. A nil logger uses slog.Default().
func New(resolver StatusResolver, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{resolver: resolver, logger: logger}
}

// Check approves or rejects a move. Only moves into terminal are inspected: a task
// linked to another may enter it once the other is already there. An empty
// terminal means the board has no guarded column.
func (g *Guard) Check(ctx context.Context, move board.MoveTask, task models.Task, terminal types.ColumnID) error {
	if terminal == "" || move.Dest != terminal || move.Source == terminal {
		return nil
	}
	if !task.HasLink() {
		return nil
	}

	dep := *task.LinkedTaskID
	status, err := g.resolver.GetTaskStatus(ctx, dep)
	if err != nil {
		return fmt.Errorf("failed to resolve linked task %s: %w", dep, err)
	}
	if status == terminal {
		return nil
	}

	g.logger.Warn("move rejected by dependency",
		"task_id", task.ID, "linked_task_id", dep, "linked_status", status)
	return &DependencyError{TaskID: task.ID, DependencyID: dep, DependencyStatus: status}
}
