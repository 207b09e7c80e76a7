package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tlerrors "github.com/mrz1836/tasklist/internal/errors"
)

// testError is a custom error type used to exercise the default branches
// in UserMessage and Actionable without matching any sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func TestSentinelErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrTaskNotFound", tlerrors.ErrTaskNotFound, "task not found"},
		{"ErrEmptyTaskName", tlerrors.ErrEmptyTaskName, "task name cannot be empty"},
		{"ErrDuplicateTaskID", tlerrors.ErrDuplicateTaskID, "duplicate task id"},
		{"ErrInvalidFilter", tlerrors.ErrInvalidFilter, "invalid filter"},
		{"ErrSeedNotFound", tlerrors.ErrSeedNotFound, "seed file not found"},
		{"ErrNonInteractiveMode", tlerrors.ErrNonInteractiveMode, "use --force in non-interactive mode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, tlerrors.Wrap(nil, "context"))
		require.NoError(t, tlerrors.Wrapf(nil, "context %d", 1))
	})

	t.Run("chain is preserved", func(t *testing.T) {
		t.Parallel()
		err := tlerrors.Wrap(tlerrors.ErrSeedInvalid, "failed to load seed")
		require.ErrorIs(t, err, tlerrors.ErrSeedInvalid)
		assert.Equal(t, "failed to load seed: seed file invalid", err.Error())
	})

	t.Run("formatted context", func(t *testing.T) {
		t.Parallel()
		err := tlerrors.Wrapf(tlerrors.ErrTaskNotFound, "rename %s", "todo-1")
		require.ErrorIs(t, err, tlerrors.ErrTaskNotFound)
		assert.Equal(t, "rename todo-1: task not found", err.Error())
	})
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"direct sentinel", tlerrors.ErrEmptyTaskName, "Task name cannot be empty."},
		{"wrapped sentinel", fmt.Errorf("save: %w", tlerrors.ErrTaskNotFound), "That task no longer exists."},
		{"unknown error", testError{msg: "boom"}, "boom"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tlerrors.UserMessage(tc.err))
		})
	}
}

func TestActionable(t *testing.T) {
	t.Parallel()

	msg, action := tlerrors.Actionable(nil)
	assert.Empty(t, msg)
	assert.Empty(t, action)

	msg, action = tlerrors.Actionable(tlerrors.Wrap(tlerrors.ErrSeedExists, "init"))
	assert.Equal(t, "A seed file already exists at that path.", msg)
	assert.Equal(t, "Use --force to overwrite it.", action)

	msg, action = tlerrors.Actionable(tlerrors.ErrTaskNotFound)
	assert.Equal(t, "That task no longer exists.", msg)
	assert.Empty(t, action)

	msg, action = tlerrors.Actionable(testError{msg: "unmapped"})
	assert.Equal(t, "unmapped", msg)
	assert.Empty(t, action)
}

func TestExitCode2Error(t *testing.T) {
	t.Parallel()

	base := tlerrors.ErrInvalidFilter
	err := tlerrors.NewExitCode2Error(base)

	assert.True(t, tlerrors.IsExitCode2Error(err))
	assert.True(t, tlerrors.IsExitCode2Error(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, tlerrors.IsExitCode2Error(base))
	require.ErrorIs(t, err, base)
	assert.Equal(t, base.Error(), err.Error())
}
