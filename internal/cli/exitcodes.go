package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/gate"
	"github.com/thenoetrevino/tablero/internal/guard"
	"github.com/thenoetrevino/tablero/internal/models"
	boardservice "github.com/thenoetrevino/tablero/internal/services/board"
	columnservice "github.com/thenoetrevino/tablero/internal/services/column"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, failed writes, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, no board selected.
	ExitUsage = 2

	// ExitNotFound indicates a requested board, column or task was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid titles or colors, non-empty or default column deletes,
	// and moves blocked by an unfinished dependency.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command. The message has
// already been printed by the formatter.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// UsageError marks mistakes in how a command was invoked
type UsageError struct {
	Message    string
	Suggestion string
}

func (e *UsageError) Error() string {
	return e.Message
}

// ExitCode maps an error to the exit code the process should return
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	code, _ := classify(err)
	return code
}

// classify picks an exit code and a machine readable error code
func classify(err error) (int, string) {
	var usage *UsageError
	var depErr *guard.DependencyError
	var persistErr *gate.PersistenceError

	switch {
	case errors.As(err, &usage):
		return ExitUsage, "USAGE_ERROR"
	case errors.As(err, &depErr):
		return ExitValidation, "DEPENDENCY_NOT_SATISFIED"
	case errors.Is(err, columnservice.ErrColumnNotEmpty):
		return ExitValidation, "COLUMN_NOT_EMPTY"
	case errors.Is(err, columnservice.ErrDefaultColumnProtected):
		return ExitValidation, "DEFAULT_COLUMN_PROTECTED"
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound, "NOT_FOUND"
	case errors.As(err, &persistErr):
		return ExitError, "PERSISTENCE_ERROR"
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return ExitValidation, "VALIDATION_ERROR"
		}
	}
	return ExitError, "ERROR"
}

var validationErrors = []error{
	columnservice.ErrEmptyTitle,
	columnservice.ErrTitleTooLong,
	columnservice.ErrInvalidColor,
	columnservice.ErrInvalidSequence,
	taskservice.ErrEmptyTitle,
	taskservice.ErrTitleTooLong,
	taskservice.ErrInvalidStatus,
	taskservice.ErrSelfLink,
	taskservice.ErrCircularLink,
	taskservice.ErrCrossBoard,
	boardservice.ErrEmptyName,
	boardservice.ErrNameTooLong,
	boardservice.ErrColumnNotOnBoard,
	boardservice.ErrAmbiguousName,
	board.ErrInvalidColumnOrder,
	models.ErrInvalidColor,
}

// Fail prints err through the formatter and returns it wrapped with its exit code
func Fail(f *OutputFormatter, err error) error {
	code, errCode := classify(err)

	suggestion := ""
	var usage *UsageError
	if errors.As(err, &usage) {
		suggestion = usage.Suggestion
	}
	if fmtErr := f.ErrorWithSuggestion(errCode, err.Error(), suggestion); fmtErr != nil {
		return fmt.Errorf("%w (and failed to print it: %v)", err, fmtErr)
	}
	return &CodedError{Code: code, Err: err}
}
