package task

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrTitleTooLong  = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrInvalidStatus = errors.New("status does not name a column on this board")

	// Business logic errors
	ErrTaskNotFound = fmt.Errorf("task %w", models.ErrNotFound)
	ErrSelfLink     = errors.New("task cannot depend on itself")
	ErrCircularLink = errors.New("circular dependency detected")
	ErrCrossBoard   = errors.New("linked tasks must be on the same board")
)
