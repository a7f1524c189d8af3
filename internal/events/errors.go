package events

import (
	"errors"
	"os"
	"syscall"
)

// ErrorCode classifies why the daemon could not be reached
type ErrorCode int

const (
	ErrSocketNotFound ErrorCode = iota
	ErrSocketPermission
	ErrDaemonNotRunning
	ErrConnectionRefused
)

// DaemonError is a dial failure with a hint the user can act on
type DaemonError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Err     error
}

func (e *DaemonError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

func (e *DaemonError) Unwrap() error {
	return e.Err
}

const startHint = "Start daemon: tablero-daemon &"

var daemonErrors = []struct {
	match   func(error) bool
	code    ErrorCode
	message string
	hint    string
}{
	{os.IsNotExist, ErrSocketNotFound, "Socket file not found", startHint},
	{os.IsPermission, ErrSocketPermission, "Permission denied", "Check ~/.tablero/ permissions: chmod 700 ~/.tablero/"},
	{isRefused, ErrConnectionRefused, "Connection refused", "Daemon may be crashed. Restart: tablero-daemon &"},
}

func isRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}

// ClassifyDaemonError maps a dial error to a DaemonError. Unrecognized errors
// are reported as the daemon not running.
func ClassifyDaemonError(err error) *DaemonError {
	if err == nil {
		return nil
	}
	for _, d := range daemonErrors {
		if d.match(unwrapAll(err)) || d.match(err) {
			return &DaemonError{Code: d.code, Message: d.message, Hint: d.hint, Err: err}
		}
	}
	return &DaemonError{Code: ErrDaemonNotRunning, Message: "Daemon not running", Hint: startHint, Err: err}
}

// unwrapAll returns the innermost error; os.IsNotExist does not follow %w chains
func unwrapAll(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
