// Package errors provides centralized error handling for tasklist.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrTaskNotFound indicates that a mutation targeted a task id that is not in the list.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyTaskName indicates an empty or whitespace-only task name was rejected.
	ErrEmptyTaskName = errors.New("task name cannot be empty")

	// ErrEmptyTaskID indicates a seeded task carried no id.
	ErrEmptyTaskID = errors.New("task id cannot be empty")

	// ErrDuplicateTaskID indicates two seeded tasks share the same id.
	ErrDuplicateTaskID = errors.New("duplicate task id")

	// ErrInvalidFilter indicates an unknown filter name was specified.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidIDPrefix indicates the configured id prefix contains whitespace.
	ErrInvalidIDPrefix = errors.New("invalid id prefix")

	// ErrSeedNotFound indicates the seed file does not exist.
	ErrSeedNotFound = errors.New("seed file not found")

	// ErrSeedInvalid indicates the seed file could not be parsed.
	ErrSeedInvalid = errors.New("seed file invalid")

	// ErrSeedLocked indicates another process kept the seed file locked past the timeout.
	ErrSeedLocked = errors.New("seed file is locked")

	// ErrSeedExists indicates init would overwrite an existing seed file.
	ErrSeedExists = errors.New("seed file already exists")

	// ErrNonInteractiveMode indicates that an operation requiring confirmation
	// was attempted in non-interactive mode without the force flag.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")

	// ErrMenuCanceled indicates that the user canceled a prompt.
	ErrMenuCanceled = errors.New("menu canceled by user")

	// ErrTTYRequired indicates the interactive UI was started without a terminal.
	ErrTTYRequired = errors.New("interactive ui requires a terminal")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
