// Package domain provides shared domain types for tasklist.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
package domain

import "fmt"

// Task is a single to-do item.
//
// Example YAML representation (seed file):
//
//	tasks:
//	  - id: todo-0
//	    name: Eat
//	    completed: true
//
// The ID is assigned once and never changes. Tasks are values: every change
// produces a new Task that replaces the old one in the owning list.
type Task struct {
	// ID uniquely identifies the task within its list.
	ID string `json:"id" yaml:"id"`

	// Name is the short free-text description shown to the user.
	Name string `json:"name" yaml:"name"`

	// Completed reports whether the task has been checked off.
	Completed bool `json:"completed" yaml:"completed"`
}

// WithCompleted returns a copy of t with Completed set to completed.
func (t Task) WithCompleted(completed bool) Task {
	t.Completed = completed
	return t
}

// WithName returns a copy of t renamed to name.
func (t Task) WithName(name string) Task {
	t.Name = name
	return t
}

// HeadingText returns the results heading for a list showing count tasks,
// e.g. "1 task remaining" or "3 tasks remaining".
func HeadingText(count int) string {
	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%d %s remaining", count, noun)
}
