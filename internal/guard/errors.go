package guard

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/types"
)

// ErrDependencyNotSatisfied is returned when a linked task is moved into the
// terminal column before the task it depends on
var ErrDependencyNotSatisfied = errors.New("dependency not satisfied")

// DependencyError names the blocked task and the dependency holding it back
type DependencyError struct {
	TaskID           types.TaskID
	DependencyID     types.TaskID
	DependencyStatus types.ColumnID
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("task %s cannot be completed: linked task %s is still in %s",
		e.TaskID, e.DependencyID, e.DependencyStatus)
}

func (e *DependencyError) Unwrap() error {
	return ErrDependencyNotSatisfied
}
