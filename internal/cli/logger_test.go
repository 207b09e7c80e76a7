package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tasklist/internal/constants"
	"github.com/mrz1836/tasklist/internal/logging"
)

func TestSelectLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		verbose       bool
		quiet         bool
		expectedLevel zerolog.Level
	}{
		{"default returns info", false, false, zerolog.InfoLevel},
		{"verbose returns debug", true, false, zerolog.DebugLevel},
		{"quiet returns warn", false, true, zerolog.WarnLevel},
		{"verbose takes precedence", true, true, zerolog.DebugLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expectedLevel, selectLevel(tc.verbose, tc.quiet))

			var buf bytes.Buffer
			logger := InitLoggerWithWriter(tc.verbose, tc.quiet, &buf)
			assert.Equal(t, tc.expectedLevel, logger.GetLevel())
		})
	}
}

func TestSelectOutput_NonTTY(t *testing.T) {
	// Tests run without a terminal on stderr, so the JSON writer is chosen.
	assert.Equal(t, os.Stderr, selectOutput())
}

func TestSelectOutput_RespectsNO_COLOR(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, os.Stderr, selectOutput())
}

func TestInitLoggerWithWriter_CustomOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := InitLoggerWithWriter(true, false, &buf)

	logger.Debug().Str("task_id", "todo-1").Msg("toggled task")

	output := buf.String()
	assert.Contains(t, output, `"ts":`)
	assert.Contains(t, output, `"level":"debug"`)
	assert.Contains(t, output, `"event":"toggled task"`)
	assert.Contains(t, output, `"task_id":"todo-1"`)
}

func TestConfigureZerologGlobals_Idempotent(t *testing.T) {
	t.Parallel()

	configureZerologGlobals()
	configureZerologGlobals()

	assert.Equal(t, "ts", zerolog.TimestampFieldName)
	assert.Equal(t, "event", zerolog.MessageFieldName)
}

func TestCreateLogFileWriter_CreatesLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(constants.HomeEnvVar, tmpDir)

	writer, err := createLogFileWriter()
	require.NoError(t, err)
	require.NotNil(t, writer)

	_, err = writer.Write([]byte(`{"level":"info","event":"test"}`))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	logPath := filepath.Join(tmpDir, constants.LogsDir, constants.CLILogFileName)
	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCreateLogFileWriter_FailsOnInvalidPath(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "not_a_directory")
	require.NoError(t, os.WriteFile(filePath, []byte("test"), 0o600))
	t.Setenv(constants.HomeEnvVar, filePath)

	writer, err := createLogFileWriter()
	require.Error(t, err)
	assert.Nil(t, writer)
	assert.Contains(t, err.Error(), "failed to create log directory")
}

func TestLogFilePath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(constants.HomeEnvVar, tmpDir)

	path, err := LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, constants.LogsDir, constants.CLILogFileName), path)
}

func TestInitLogger_WritesRedactedFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(constants.HomeEnvVar, tmpDir)
	logFileWriter = nil

	logger := InitLogger(false, false)
	logger.Info().Str("test_key", "test_value").Msg("added task password=hunter22")
	CloseLogFile()

	data, err := os.ReadFile(filepath.Join(tmpDir, constants.LogsDir, constants.CLILogFileName)) //#nosec G304 -- test temp dir
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "test_value")
	assert.Contains(t, content, "added task")
	assert.Contains(t, content, logging.RedactedValue)
	assert.NotContains(t, content, "hunter22")
}

func TestInitLogger_HandlesFileCreationFailure(t *testing.T) {
	t.Setenv(constants.HomeEnvVar, "/dev/null/invalid")
	logFileWriter = nil

	logger := InitLogger(false, false)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	assert.Nil(t, logFileWriter)
}

func TestInitFileLogger(t *testing.T) {
	t.Run("writes to the log file only", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv(constants.HomeEnvVar, tmpDir)
		logFileWriter = nil

		logger := InitFileLogger(true, false)
		assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
		require.NotNil(t, logFileWriter)

		logger.Debug().Msg("screen started")
		CloseLogFile()

		data, err := os.ReadFile(filepath.Join(tmpDir, constants.LogsDir, constants.CLILogFileName)) //#nosec G304 -- test temp dir
		require.NoError(t, err)
		assert.Contains(t, string(data), "screen started")
	})

	t.Run("reuses an open log file", func(t *testing.T) {
		var buf bytes.Buffer
		existing := &filteringWriteCloser{
			filter: logging.NewFilteringWriter(&buf),
			closer: io.NopCloser(&buf),
		}
		logFileWriter = existing
		t.Cleanup(func() { logFileWriter = nil })

		logger := InitFileLogger(false, false)
		logger.Info().Msg("reused")

		assert.Same(t, existing, logFileWriter)
		assert.Contains(t, buf.String(), "reused")
	})

	t.Run("discards when the file cannot be opened", func(t *testing.T) {
		t.Setenv(constants.HomeEnvVar, "/dev/null/invalid")
		logFileWriter = nil

		logger := InitFileLogger(false, true)
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
		assert.Nil(t, logFileWriter)
	})
}

func TestCloseLogFile_NoOpWhenNil(_ *testing.T) {
	logFileWriter = nil
	CloseLogFile()
}

func TestFilteringWriteCloser(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fwc := &filteringWriteCloser{
		filter: logging.NewFilteringWriter(&buf),
		closer: io.NopCloser(&buf),
	}

	input := []byte("buy milk secret=opensesame")
	n, err := fwc.Write(input)

	require.NoError(t, err)
	assert.Equal(t, len(input), n)
	assert.Contains(t, buf.String(), "buy milk")
	assert.NotContains(t, buf.String(), "opensesame")
	require.NoError(t, fwc.Close())
}
