package board

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

var (
	ErrUnknownColumn      = fmt.Errorf("column %w", models.ErrNotFound)
	ErrUnknownTask        = fmt.Errorf("task %w", models.ErrNotFound)
	ErrInvalidColumnOrder = errors.New("column order must list every column exactly once")
	ErrUnknownCommand     = errors.New("unknown board command")
)
