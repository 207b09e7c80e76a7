// Package constants provides centralized constant values used throughout tasklist.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by tasklist for organizing data.
const (
	// AppHome is the hidden directory name where tasklist stores its configuration and logs.
	// The global copy lives in the user's home directory, the project copy in the working directory.
	AppHome = ".tasklist"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// EnvPrefix is the prefix for environment variable overrides (e.g., TASKLIST_TASKS_STRICT).
	EnvPrefix = "TASKLIST"

	// HomeEnvVar overrides the global AppHome location when set.
	HomeEnvVar = "TASKLIST_HOME"
)

// Task defaults.
const (
	// DefaultIDPrefix is prepended to every generated task id.
	DefaultIDPrefix = "todo-"

	// DefaultNameWidth is the default maximum display width of a task name in the TUI.
	DefaultNameWidth = 48

	// MinNameWidth is the smallest accepted ui.name_width.
	MinNameWidth = 8

	// MaxNameWidth is the largest accepted ui.name_width.
	MaxNameWidth = 512

	// NameCharLimit caps the length of text typed into the add and rename inputs.
	NameCharLimit = 256

	// DefaultStatusTimeout is how long an inline status or error line stays on screen.
	DefaultStatusTimeout = 4 * time.Second
)

// Log rotation settings for the global CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum number of days to retain rotated log files.
	LogMaxAgeDays = 14

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)
