package board

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Board-related errors
var (
	ErrEmptyName        = errors.New("board name cannot be empty")
	ErrNameTooLong      = errors.New("board name cannot exceed 100 characters")
	ErrBoardNotFound    = fmt.Errorf("board %w", models.ErrNotFound)
	ErrColumnNotOnBoard = errors.New("column does not belong to this board")
	ErrAmbiguousName    = errors.New("more than one board has that name")
)
