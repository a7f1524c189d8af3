package gate

import (
	"errors"
	"fmt"
)

// ErrClosed is returned for commands dispatched after Close
var ErrClosed = errors.New("board gate closed")

// PersistenceError reports a write the store refused. The board has already been
// put back the way it was when the error is delivered.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
