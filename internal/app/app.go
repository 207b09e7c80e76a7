// Package app wires the task store to the focus coordinator.
//
// Each processed input event calls one or more App methods and then Commit,
// which plays the role of a render: it reads the committed state, runs the
// focus rules once against the previous commit, and returns the resulting
// focus signals. Per-row edit sessions live here, never in task records.
package app

import (
	"github.com/rs/zerolog"

	"github.com/mrz1836/tasklist/internal/domain"
	"github.com/mrz1836/tasklist/internal/focus"
	"github.com/mrz1836/tasklist/internal/store"
)

// editSession is the transient state of one row's rename form.
type editSession struct {
	draft string
}

// App is the task list application state.
type App struct {
	store    *store.Store
	focus    *focus.Coordinator
	sessions map[string]*editSession
	logger   zerolog.Logger

	// revision is the store revision seen by the last Commit.
	revision  uint64
	committed bool
}

// New creates an App over st and records the initial render, so the first
// user event is compared against the starting state.
func New(st *store.Store, logger zerolog.Logger) *App {
	a := &App{
		store:    st,
		focus:    focus.NewCoordinator(logger),
		sessions: make(map[string]*editSession),
		logger:   logger.With().Str("component", "app").Logger(),
	}
	a.Commit()
	return a
}

// Store returns the underlying task store.
func (a *App) Store() *store.Store {
	return a.store
}

// AddTask appends a task named name.
func (a *App) AddTask(name string) (domain.Task, error) {
	return a.store.Add(name)
}

// ToggleTask flips the completed flag of id.
func (a *App) ToggleTask(id string) error {
	return a.store.ToggleCompleted(id)
}

// DeleteTask removes id.
func (a *App) DeleteTask(id string) error {
	return a.store.Remove(id)
}

// SetFilter changes the active filter.
func (a *App) SetFilter(f domain.Filter) {
	a.store.SetFilter(f)
}

// StartEdit opens the rename form of id with an empty draft.
// Unknown ids and rows already being edited are left alone.
func (a *App) StartEdit(id string) {
	if _, ok := a.store.Get(id); !ok {
		return
	}
	if _, editing := a.sessions[id]; editing {
		return
	}
	a.sessions[id] = &editSession{}
}

// IsEditing reports whether the rename form of id is open.
func (a *App) IsEditing(id string) bool {
	_, ok := a.sessions[id]
	return ok
}

// SetDraft stores the text typed into the rename form of id.
func (a *App) SetDraft(id, text string) {
	if s, ok := a.sessions[id]; ok {
		s.draft = text
	}
}

// Draft returns the text typed into the rename form of id.
func (a *App) Draft(id string) string {
	if s, ok := a.sessions[id]; ok {
		return s.draft
	}
	return ""
}

// SaveEdit renames id to its draft and closes the form.
// When the store rejects the name (strict mode) the form stays open and the
// error is returned for inline display.
func (a *App) SaveEdit(id string) error {
	s, ok := a.sessions[id]
	if !ok {
		return nil
	}
	if err := a.store.Rename(id, s.draft); err != nil {
		return err
	}
	delete(a.sessions, id)
	return nil
}

// CancelEdit closes the rename form of id without renaming.
func (a *App) CancelEdit(id string) {
	delete(a.sessions, id)
}

// Commit runs the render step and returns the focus moves it caused, in order:
// the heading rule first, then each visible row's edit rule in list order.
// Rows that are no longer visible lose their edit session and history.
func (a *App) Commit() []focus.Signal {
	var signals []focus.Signal

	// The task count can only change with the store revision.
	if rev := a.store.Revision(); !a.committed || rev != a.revision {
		a.logger.Debug().Uint64("revision", rev).Int("tasks", a.store.Len()).Msg("task list changed")
		if sig, ok := a.focus.ObserveCount(a.store.Len()); ok {
			signals = append(signals, sig)
		}
		a.revision, a.committed = rev, true
	}

	visible := a.store.VisibleTasks()
	shown := make(map[string]struct{}, len(visible))
	for _, task := range visible {
		shown[task.ID] = struct{}{}
		if sig, ok := a.focus.ObserveEditing(task.ID, a.IsEditing(task.ID)); ok {
			signals = append(signals, sig)
		}
	}

	for _, id := range a.focus.Tracked() {
		if _, ok := shown[id]; !ok {
			a.focus.Forget(id)
		}
	}
	for id := range a.sessions {
		if _, ok := shown[id]; !ok {
			a.logger.Debug().Str("task_id", id).Msg("dropping edit session of hidden row")
			delete(a.sessions, id)
		}
	}

	return signals
}
