package domain

import (
	"fmt"
	"strings"

	"github.com/mrz1836/tasklist/internal/errors"
)

// Filter selects which tasks are visible.
type Filter string

// Filter constants. FilterAll is the default.
const (
	// FilterAll shows every task.
	FilterAll Filter = "All"

	// FilterActive shows tasks that are not completed.
	FilterActive Filter = "Active"

	// FilterCompleted shows completed tasks only.
	FilterCompleted Filter = "Completed"
)

// FilterNames returns every filter in button order.
func FilterNames() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// String returns the filter name.
func (f Filter) String() string {
	return string(f)
}

// IsValid reports whether f is one of the known filters.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

// Match reports whether task passes the filter.
// Unknown filters match nothing.
func (f Filter) Match(task Task) bool {
	switch f {
	case FilterAll:
		return true
	case FilterActive:
		return !task.Completed
	case FilterCompleted:
		return task.Completed
	default:
		return false
	}
}

// Apply returns the tasks that pass the filter, in their original order.
// The input slice is never modified.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Match(task) {
			out = append(out, task)
		}
	}
	return out
}

// ParseFilter converts a case-insensitive name into a Filter.
// An empty string yields FilterAll.
func ParseFilter(name string) (Filter, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return FilterAll, nil
	}
	for _, f := range FilterNames() {
		if strings.EqualFold(trimmed, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidFilter, name, FilterNames())
}
