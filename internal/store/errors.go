package store

import (
	"fmt"

	"github.com/mrz1836/tasklist/internal/errors"
)

// NotFoundError reports a mutation whose target id is absent.
// It unwraps to errors.ErrTaskNotFound.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", errors.ErrTaskNotFound, e.ID)
}

// Unwrap returns the sentinel error.
func (e *NotFoundError) Unwrap() error {
	return errors.ErrTaskNotFound
}

// ValidationError reports an empty or whitespace-only task name.
// ID is empty when the name was given to Add.
// It unwraps to errors.ErrEmptyTaskName.
type ValidationError struct {
	ID    string
	Value string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return errors.ErrEmptyTaskName.Error()
	}
	return fmt.Sprintf("%s: %s", e.ID, errors.ErrEmptyTaskName)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return errors.ErrEmptyTaskName
}
