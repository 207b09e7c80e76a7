// Package store holds the ordered task list and the active filter.
//
// Every mutation replaces the whole task slice (copy-on-write) and bumps the
// revision counter, so observers can detect a change by comparing revisions
// instead of diffing contents. A Store is owned by a single event loop and is
// not safe for concurrent use.
package store

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrz1836/tasklist/internal/constants"
	"github.com/mrz1836/tasklist/internal/domain"
	"github.com/mrz1836/tasklist/internal/errors"
	"github.com/mrz1836/tasklist/internal/logging"
)

// maxIDAttempts bounds regeneration when a generated id collides with an existing one.
const maxIDAttempts = 8

// IDGenerator returns a fresh task id.
type IDGenerator func() string

// NewUUIDGenerator returns an IDGenerator producing prefix + random UUID.
func NewUUIDGenerator(prefix string) IDGenerator {
	return func() string {
		return prefix + uuid.NewString()
	}
}

// Store is the task list. Create it with New.
type Store struct {
	tasks    []domain.Task
	filter   domain.Filter
	revision uint64

	newID  IDGenerator
	strict bool
	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the id generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithStrict turns on strict mode: unknown ids and empty names are reported
// as *NotFoundError and *ValidationError instead of being ignored.
func WithStrict(strict bool) Option {
	return func(s *Store) {
		s.strict = strict
	}
}

// WithLogger sets the logger used for debug-level mutation tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store seeded with initial. The seed is copied; every task in it
// must carry a non-empty id that is unique within the seed.
func New(initial []domain.Task, opts ...Option) (*Store, error) {
	seen := make(map[string]struct{}, len(initial))
	for _, task := range initial {
		if task.ID == "" {
			return nil, errors.Wrapf(errors.ErrEmptyTaskID, "seed task %q", task.Name)
		}
		if _, dup := seen[task.ID]; dup {
			return nil, errors.Wrapf(errors.ErrDuplicateTaskID, "seed task %q", task.ID)
		}
		seen[task.ID] = struct{}{}
	}

	s := &Store{
		tasks:  cloneTasks(initial),
		filter: domain.FilterAll,
		newID:  NewUUIDGenerator(constants.DefaultIDPrefix),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("component", "store").Logger()
	return s, nil
}

// Add appends a new incomplete task named name and returns it.
// In strict mode an empty or whitespace-only name is rejected.
func (s *Store) Add(name string) (domain.Task, error) {
	if err := s.checkName("", name); err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{ID: s.freshID(), Name: name}

	next := make([]domain.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	s.replace(append(next, task))

	s.logger.Debug().
		Str("task_id", task.ID).
		Str("task_name", logging.TaskName(name)).
		Int("count", len(s.tasks)).
		Msg("task added")
	return task, nil
}

// ToggleCompleted flips the completed flag of the task with the given id.
func (s *Store) ToggleCompleted(id string) error {
	return s.update(id, func(task domain.Task) domain.Task {
		return task.WithCompleted(!task.Completed)
	})
}

// Rename replaces the name of the task with the given id.
// Names are not required to be unique.
func (s *Store) Rename(id, newName string) error {
	if err := s.checkName(id, newName); err != nil {
		return err
	}
	s.logger.Debug().Str("task_id", id).Str("task_name", logging.TaskName(newName)).Msg("renaming task")
	return s.update(id, func(task domain.Task) domain.Task {
		return task.WithName(newName)
	})
}

// Remove deletes the task with the given id.
func (s *Store) Remove(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return s.notFound(id)
	}

	next := make([]domain.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:idx]...)
	next = append(next, s.tasks[idx+1:]...)
	s.replace(next)

	s.logger.Debug().Str("task_id", id).Int("count", len(s.tasks)).Msg("task removed")
	return nil
}

// SetFilter changes the active filter. The task list is not touched.
func (s *Store) SetFilter(f domain.Filter) {
	s.filter = f
	s.logger.Debug().Str("filter", f.String()).Msg("filter changed")
}

// Filter returns the active filter.
func (s *Store) Filter() domain.Filter {
	return s.filter
}

// Tasks returns a copy of every task in insertion order.
func (s *Store) Tasks() []domain.Task {
	return cloneTasks(s.tasks)
}

// VisibleTasks returns the tasks passing the active filter, in insertion order.
// It is computed on every call.
func (s *Store) VisibleTasks() []domain.Task {
	return s.filter.Apply(s.tasks)
}

// Len returns the number of tasks regardless of filter.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (domain.Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Task{}, false
	}
	return s.tasks[idx], true
}

// Revision increases every time the task slice is replaced.
func (s *Store) Revision() uint64 {
	return s.revision
}

func (s *Store) update(id string, fn func(domain.Task) domain.Task) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return s.notFound(id)
	}

	next := cloneTasks(s.tasks)
	next[idx] = fn(next[idx])
	s.replace(next)

	s.logger.Debug().Str("task_id", id).Msg("task updated")
	return nil
}

func (s *Store) replace(next []domain.Task) {
	s.tasks = next
	s.revision++
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) freshID() string {
	id := s.newID()
	for attempt := 1; attempt < maxIDAttempts && s.indexOf(id) >= 0; attempt++ {
		s.logger.Warn().Str("task_id", id).Msg("generated id collided, regenerating")
		id = s.newID()
	}
	return id
}

func (s *Store) notFound(id string) error {
	if !s.strict {
		s.logger.Debug().Str("task_id", id).Msg("ignoring mutation of unknown task")
		return nil
	}
	return &NotFoundError{ID: id}
}

func (s *Store) checkName(id, name string) error {
	if !s.strict || strings.TrimSpace(name) != "" {
		return nil
	}
	return &ValidationError{ID: id, Value: name}
}

func cloneTasks(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	return out
}
