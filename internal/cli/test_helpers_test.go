package cli

// This file contains test utilities and mocks for testing CLI functions.
// These helpers are only available in test files (*_test.go).

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tasklist/internal/constants"
)

// mockFormRunner is a test helper that implements the formRunner interface.
// Use this to mock Charm Huh forms in tests.
type mockFormRunner struct {
	// runErr is the error to return from Run()
	runErr error

	// onRun is an optional callback executed when Run() is called
	// Use this to simulate user input by modifying form values
	onRun func()
}

// Run executes the mock form, optionally calling the onRun callback.
func (m *mockFormRunner) Run() error {
	if m.onRun != nil {
		m.onRun()
	}
	return m.runErr
}

// mockTerminalCheckFunc replaces terminalCheck until the test ends.
func mockTerminalCheckFunc(t *testing.T, isTerminal bool) {
	t.Helper()
	original := terminalCheck
	terminalCheck = func() bool { return isTerminal }
	t.Cleanup(func() { terminalCheck = original })
}

// mockOverwriteForm replaces the overwrite prompt until the test ends.
// answer is written to the prompt's value unless runErr is set.
func mockOverwriteForm(t *testing.T, answer bool, runErr error) *int {
	t.Helper()
	calls := 0
	original := createOverwriteConfirmForm
	createOverwriteConfirmForm = func(_ string, confirm *bool) formRunner {
		calls++
		return &mockFormRunner{
			runErr: runErr,
			onRun:  func() { *confirm = answer },
		}
	}
	t.Cleanup(func() { createOverwriteConfirmForm = original })
	return &calls
}

// isolate points TASKLIST_HOME and the working directory at fresh temp dirs
// and clears TASKLIST_* overrides. Tests using it cannot run in parallel.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()

	home = t.TempDir()
	t.Setenv(constants.HomeEnvVar, home)
	for _, key := range []string{
		"TASKLIST_OUTPUT", "TASKLIST_VERBOSE", "TASKLIST_QUIET", "TASKLIST_CONFIG",
		"TASKLIST_TASKS_SEED_FILE", "TASKLIST_TASKS_ID_PREFIX", "TASKLIST_TASKS_STRICT",
		"TASKLIST_UI_DEFAULT_FILTER", "TASKLIST_UI_NAME_WIDTH", "TASKLIST_UI_STATUS_TIMEOUT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	wd = t.TempDir()
	t.Chdir(wd)

	t.Cleanup(CloseLogFile)
	return home, wd
}

// executeRoot runs the root command with args and returns its combined output.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// writeFile creates path (and its parent directories) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

const testSeed = `tasks:
  - id: t-1
    name: Write report
    completed: false
  - id: t-2
    name: File taxes
    completed: true
  - id: t-3
    name: Call mom
    completed: false
`
