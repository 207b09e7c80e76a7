package app

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tasklist/internal/domain"
	"github.com/mrz1836/tasklist/internal/errors"
	"github.com/mrz1836/tasklist/internal/focus"
	"github.com/mrz1836/tasklist/internal/store"
)

func newTestApp(t *testing.T, initial []domain.Task, opts ...store.Option) *App {
	t.Helper()
	n := 0
	gen := func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	st, err := store.New(initial, append([]store.Option{store.WithIDGenerator(gen)}, opts...)...)
	require.NoError(t, err)
	return New(st, zerolog.Nop())
}

func headingSignal() []focus.Signal {
	return []focus.Signal{{Target: focus.TargetHeading}}
}

func TestApp_AddToEmptyList(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, nil)

	_, err := a.AddTask("Buy milk")
	require.NoError(t, err)
	assert.Empty(t, a.Commit(), "adding never moves focus")

	tasks := a.Store().Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Name)
	assert.False(t, tasks[0].Completed)
}

func TestApp_DeleteFocusesHeading(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{{ID: "a", Name: "X"}})

	require.NoError(t, a.DeleteTask("a"))
	assert.Equal(t, headingSignal(), a.Commit())

	// the next render compares against 0, not 1
	assert.Empty(t, a.Commit())
}

func TestApp_NetZeroBatchKeepsFocus(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{{ID: "a", Name: "X"}, {ID: "b", Name: "Y"}})

	require.NoError(t, a.DeleteTask("a"))
	_, err := a.AddTask("Z")
	require.NoError(t, err)

	assert.Empty(t, a.Commit())
	assert.Equal(t, 2, a.Store().Len())
}

func TestApp_DeletingUnknownIDKeepsFocus(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{{ID: "a", Name: "X"}})

	require.NoError(t, a.DeleteTask("missing"))
	assert.Empty(t, a.Commit())
}

func TestApp_DeleteWhileFilteredStillCountsAllTasks(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{
		{ID: "a", Name: "X", Completed: true},
		{ID: "b", Name: "Y"},
	})
	a.SetFilter(domain.FilterActive)
	assert.Empty(t, a.Commit())

	require.NoError(t, a.DeleteTask("b"))
	assert.Equal(t, headingSignal(), a.Commit())
}

func TestApp_EditThenCancel(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{{ID: "a", Name: "X"}})

	a.StartEdit("a")
	assert.Equal(t, []focus.Signal{{Target: focus.TargetEditInput, TaskID: "a"}}, a.Commit())
	assert.True(t, a.IsEditing("a"))

	a.SetDraft("a", "ignored")
	a.CancelEdit("a")
	assert.Equal(t, []focus.Signal{{Target: focus.TargetEditButton, TaskID: "a"}}, a.Commit())

	got, _ := a.Store().Get("a")
	assert.Equal(t, "X", got.Name)
	assert.False(t, a.IsEditing("a"))
}

func TestApp_EditThenSave(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{{ID: "a", Name: "X"}})

	a.StartEdit("a")
	a.Commit()
	assert.Empty(t, a.Draft("a"), "the rename form starts empty")

	a.SetDraft("a", "Renamed")
	require.NoError(t, a.SaveEdit("a"))
	assert.Equal(t, []focus.Signal{{Target: focus.TargetEditButton, TaskID: "a"}}, a.Commit())

	got, _ := a.Store().Get("a")
	assert.Equal(t, "Renamed", got.Name)
	assert.Empty(t, a.Draft("a"))
}

func TestApp_SaveEmptyDraftRenamesToEmpty(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{{ID: "a", Name: "X"}})

	a.StartEdit("a")
	require.NoError(t, a.SaveEdit("a"))

	got, _ := a.Store().Get("a")
	assert.Empty(t, got.Name)
}

func TestApp_StrictSaveKeepsFormOpen(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{{ID: "a", Name: "X"}}, store.WithStrict(true))

	a.StartEdit("a")
	a.Commit()
	a.SetDraft("a", "  ")

	err := a.SaveEdit("a")
	require.ErrorIs(t, err, errors.ErrEmptyTaskName)
	assert.True(t, a.IsEditing("a"))
	assert.Equal(t, "  ", a.Draft("a"))
	assert.Empty(t, a.Commit(), "no transition while the form stays open")
}

func TestApp_StartEditIgnoresUnknownAndRepeated(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{{ID: "a", Name: "X"}})

	a.StartEdit("missing")
	assert.False(t, a.IsEditing("missing"))

	a.StartEdit("a")
	a.SetDraft("a", "keep")
	a.StartEdit("a")
	assert.Equal(t, "keep", a.Draft("a"))
}

func TestApp_HiddenRowLosesEditSession(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{{ID: "a", Name: "X"}})

	a.StartEdit("a")
	a.Commit()

	require.NoError(t, a.ToggleTask("a"))
	a.SetFilter(domain.FilterActive)
	assert.Empty(t, a.Commit(), "hidden rows do not receive focus")
	assert.False(t, a.IsEditing("a"))

	a.SetFilter(domain.FilterAll)
	assert.Empty(t, a.Commit())
}

func TestApp_DeletingEditedRowFocusesHeading(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{{ID: "a", Name: "X"}, {ID: "b", Name: "Y"}})

	a.StartEdit("a")
	a.Commit()

	require.NoError(t, a.DeleteTask("a"))
	assert.Equal(t, headingSignal(), a.Commit())
	assert.False(t, a.IsEditing("a"))
}

func TestApp_View(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, []domain.Task{
		{ID: "a", Name: "Eat", Completed: true},
		{ID: "b", Name: "Sleep"},
	})

	v := a.View()
	assert.Equal(t, "2 tasks remaining", v.Heading)
	assert.Equal(t, domain.FilterAll, v.Filter)
	assert.Equal(t, 2, v.Total)
	require.Len(t, v.Filters, 3)

	a.SetFilter(domain.FilterCompleted)
	a.StartEdit("a")
	a.SetDraft("a", "Feast")

	v = a.View()
	assert.Equal(t, "1 task remaining", v.Heading)
	require.Len(t, v.Rows, 1)
	assert.Equal(t, Row{Task: domain.Task{ID: "a", Name: "Eat", Completed: true}, Editing: true, Draft: "Feast"}, v.Rows[0])

	pressed := 0
	for _, b := range v.Filters {
		if b.Pressed {
			pressed++
			assert.Equal(t, domain.FilterCompleted, b.Filter)
		}
	}
	assert.Equal(t, 1, pressed)
}

func TestApp_CommitLogsOnlyTaskChanges(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	st, err := store.New([]domain.Task{{ID: "a", Name: "X"}, {ID: "b", Name: "Y"}})
	require.NoError(t, err)
	a := New(st, zerolog.New(&buf).Level(zerolog.DebugLevel))
	changes := func() int { return strings.Count(buf.String(), "task list changed") }
	require.Equal(t, 1, changes(), "initial render")

	a.SetFilter(domain.FilterActive)
	a.StartEdit("a")
	a.Commit()
	assert.Equal(t, 1, changes(), "filter and edit state leave the tasks alone")

	require.NoError(t, a.ToggleTask("b"))
	a.Commit()
	assert.Equal(t, 2, changes())
	assert.Contains(t, buf.String(), `"revision":1`)

	require.NoError(t, a.DeleteTask("a"))
	assert.Equal(t, headingSignal(), a.Commit())
	assert.Equal(t, 3, changes())
}
