// Package task implements the task operations that live outside the board engine:
// creating and deleting cards, and maintaining their dependency links.
package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	Get(ctx context.Context, id types.TaskID) (*models.Task, error)
	List(ctx context.Context, boardID types.BoardID) ([]*models.Task, error)
	GetTaskStatus(ctx context.Context, id types.TaskID) (types.ColumnID, error)

	// Write operations
	Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, id types.TaskID) error
	Link(ctx context.Context, id, dependency types.TaskID) error
	Unlink(ctx context.Context, id types.TaskID) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	BoardID     types.BoardID
	Status      types.ColumnID
	Title       string
	Description string
	LinkedTo    *types.TaskID // Optional dependency
}

// Store is the persistence the task service needs
type Store interface {
	database.TaskRepository
	database.ColumnReader
}

type service struct {
	repo        Store
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// NewService creates a new task service. eventClient may be nil.
func NewService(repo Store, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
		logger:      slog.Default(),
	}
}

// Get retrieves a task by id
func (s *service) Get(ctx context.Context, id types.TaskID) (*models.Task, error) {
	if id == "" {
		return nil, ErrInvalidTaskID
	}
	task, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, id)
	}
	return task, nil
}

// List retrieves every task on a board in creation order
func (s *service) List(ctx context.Context, boardID types.BoardID) ([]*models.Task, error) {
	return s.repo.GetTasksByBoard(ctx, boardID)
}

// GetTaskStatus resolves the current column of a task. The transition guard uses
// this to look up dependencies.
func (s *service) GetTaskStatus(ctx context.Context, id types.TaskID) (types.ColumnID, error) {
	status, err := s.repo.GetTaskStatus(ctx, id)
	if err != nil {
		return "", wrapNotFound(err, id)
	}
	return status, nil
}

// Create validates and inserts a task
func (s *service) Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	col, err := s.repo.GetColumnByID(ctx, req.Status)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidStatus
		}
		return nil, fmt.Errorf("failed to resolve status: %w", err)
	}
	if col.BoardID != req.BoardID {
		return nil, ErrInvalidStatus
	}

	task := &models.Task{
		ID:          types.NewTaskID(),
		BoardID:     req.BoardID,
		Status:      req.Status,
		Title:       req.Title,
		Description: req.Description,
	}

	if req.LinkedTo != nil {
		dep, err := s.Get(ctx, *req.LinkedTo)
		if err != nil {
			return nil, err
		}
		if dep.BoardID != req.BoardID {
			return nil, ErrCrossBoard
		}
		linked := dep.ID
		task.LinkedTaskID = &linked
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.publish(task.BoardID)
	return task, nil
}

// Delete removes a task; tasks that depended on it lose their link
func (s *service) Delete(ctx context.Context, id types.TaskID) error {
	task, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", wrapNotFound(err, id))
	}
	s.publish(task.BoardID)
	return nil
}

// Link makes id depend on dependency, replacing any existing link
func (s *service) Link(ctx context.Context, id, dependency types.TaskID) error {
	if id == dependency {
		return ErrSelfLink
	}

	task, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	dep, err := s.Get(ctx, dependency)
	if err != nil {
		return err
	}
	if task.BoardID != dep.BoardID {
		return ErrCrossBoard
	}

	// Follow the dependency chain; reaching id again would close a cycle
	seen := map[types.TaskID]bool{dependency: true}
	for cur := dep; cur.HasLink(); {
		next := *cur.LinkedTaskID
		if next == id {
			return ErrCircularLink
		}
		if seen[next] {
			break
		}
		seen[next] = true
		cur, err = s.Get(ctx, next)
		if err != nil {
			return err
		}
	}

	if err := s.repo.SetTaskLink(ctx, id, &dependency); err != nil {
		return fmt.Errorf("failed to link task: %w", err)
	}
	s.publish(task.BoardID)
	return nil
}

// Unlink clears a task's dependency
func (s *service) Unlink(ctx context.Context, id types.TaskID) error {
	task, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !task.HasLink() {
		return nil
	}
	if err := s.repo.SetTaskLink(ctx, id, nil); err != nil {
		return fmt.Errorf("failed to unlink task: %w", err)
	}
	s.publish(task.BoardID)
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > 255 {
		return ErrTitleTooLong
	}
	return nil
}

func wrapNotFound(err error, id types.TaskID) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return err
}

func (s *service) publish(boardID types.BoardID) {
	if s.eventClient == nil {
		return
	}
	if err := events.PublishWithRetry(s.eventClient, events.BoardChanged(boardID.String()), 3); err != nil {
		s.logger.Warn("failed to publish task event", "board_id", boardID, "error", err)
	}
}
