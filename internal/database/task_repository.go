package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
}

const taskFields = `id, board_id, status, linked_task_id, title, description, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	task := &models.Task{}
	var linked sql.NullString
	if err := row.Scan(
		&task.ID, &task.BoardID, &task.Status, &linked,
		&task.Title, &task.Description, &task.CreatedAt, &task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	task.LinkedTaskID = nullStringToTaskID(linked)
	return task, nil
}

func (r *TaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}

// CreateTask inserts a new task. CreatedAt/UpdatedAt are stamped here.
func (r *TaskRepo) CreateTask(ctx context.Context, task *models.Task) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, board_id, status, linked_task_id, title, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(task.ID), string(task.BoardID), string(task.Status), taskIDParam(task.LinkedTaskID),
		task.Title, task.Description, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task '%s': %w", task.Title, err)
	}
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// GetTaskByID retrieves a task by its ID
func (r *TaskRepo) GetTaskByID(ctx context.Context, id types.TaskID) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskFields+` FROM tasks WHERE id = ?`, string(id)))
	if err != nil {
		return nil, notFound(err, "task", id)
	}
	return task, nil
}

// GetTasksByBoard retrieves every task on a board in creation order
func (r *TaskRepo) GetTasksByBoard(ctx context.Context, boardID types.BoardID) ([]*models.Task, error) {
	return r.queryTasks(ctx,
		`SELECT `+taskFields+` FROM tasks WHERE board_id = ? ORDER BY created_at, rowid`,
		string(boardID))
}

// GetTasksByStatus retrieves the tasks of a board whose status equals the given column
func (r *TaskRepo) GetTasksByStatus(ctx context.Context, boardID types.BoardID, status types.ColumnID) ([]*models.Task, error) {
	return r.queryTasks(ctx,
		`SELECT `+taskFields+` FROM tasks WHERE board_id = ? AND status = ? ORDER BY created_at, rowid`,
		string(boardID), string(status))
}

// CountTasksByStatus returns how many tasks currently sit in a column
func (r *TaskRepo) CountTasksByStatus(ctx context.Context, status types.ColumnID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE status = ?`, string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting tasks in column %s: %w", status, err)
	}
	return count, nil
}

// GetTaskStatus returns only the status of a task
func (r *TaskRepo) GetTaskStatus(ctx context.Context, id types.TaskID) (types.ColumnID, error) {
	var status types.ColumnID
	err := r.db.QueryRowContext(ctx,
		`SELECT status FROM tasks WHERE id = ?`, string(id),
	).Scan(&status)
	if err != nil {
		return "", notFound(err, "task", id)
	}
	return status, nil
}

// UpdateTaskStatus writes the single status field of a task. The status must name
// a column on the task's board; otherwise nothing is written and ErrNotFound is returned.
func (r *TaskRepo) UpdateTaskStatus(ctx context.Context, id types.TaskID, status types.ColumnID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = ?
		 WHERE id = ?
		   AND EXISTS (SELECT 1 FROM columns WHERE columns.id = ? AND columns.board_id = tasks.board_id)`,
		string(status), time.Now().UTC(), string(id), string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to update status of task %s: %w", id, err)
	}
	return requireAffected(res, "task", id)
}

// SetTaskLink sets or clears the dependency of a task
func (r *TaskRepo) SetTaskLink(ctx context.Context, id types.TaskID, linked *types.TaskID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET linked_task_id = ?, updated_at = ? WHERE id = ?`,
		taskIDParam(linked), time.Now().UTC(), string(id),
	)
	if err != nil {
		return fmt.Errorf("failed to link task %s: %w", id, err)
	}
	return requireAffected(res, "task", id)
}

// DeleteTask removes a task
func (r *TaskRepo) DeleteTask(ctx context.Context, id types.TaskID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return requireAffected(res, "task", id)
}
