package column

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Column-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("column title cannot be empty")
	ErrTitleTooLong    = errors.New("column title cannot exceed 50 characters")
	ErrInvalidColor    = errors.New("invalid column color")
	ErrInvalidSequence = errors.New("column order must list every column of the board exactly once")

	// Business logic errors
	ErrColumnNotFound         = fmt.Errorf("column %w", models.ErrNotFound)
	ErrColumnNotEmpty         = errors.New("cannot delete column with tasks")
	ErrDefaultColumnProtected = errors.New("cannot delete a default column")
)

// MaxTitleLength is the longest column title accepted, in characters
const MaxTitleLength = 50
