package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice rather than a map because errors.Is() needs chain traversal for wrapped errors.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Task list
	// ===================
	{
		err: ErrTaskNotFound,
		info: ErrorInfo{
			Message: "That task no longer exists.",
		},
	},
	{
		err: ErrEmptyTaskName,
		info: ErrorInfo{
			Message: "Task name cannot be empty.",
			Action:  "Type a name before saving.",
		},
	},
	{
		err: ErrInvalidFilter,
		info: ErrorInfo{
			Message: "Unknown filter.",
			Action:  "Use one of: All, Active, Completed.",
		},
	},

	// ===================
	// Seed file
	// ===================
	{
		err: ErrSeedNotFound,
		info: ErrorInfo{
			Message: "The seed file was not found.",
			Action:  "Run 'tasklist init' to create one, or pass --seed with an existing file.",
		},
	},
	{
		err: ErrSeedInvalid,
		info: ErrorInfo{
			Message: "The seed file could not be read.",
			Action:  "Check the YAML syntax: a top-level 'tasks' list of {id, name, completed}.",
		},
	},
	{
		err: ErrDuplicateTaskID,
		info: ErrorInfo{
			Message: "The seed file contains the same task id twice.",
			Action:  "Give every task in the seed file a unique id.",
		},
	},
	{
		err: ErrEmptyTaskID,
		info: ErrorInfo{
			Message: "A task in the seed file has no id.",
			Action:  "Add an id to every task in the seed file.",
		},
	},
	{
		err: ErrSeedLocked,
		info: ErrorInfo{
			Message: "Another tasklist process is writing the seed file.",
			Action:  "Wait for it to finish and try again.",
		},
	},
	{
		err: ErrSeedExists,
		info: ErrorInfo{
			Message: "A seed file already exists at that path.",
			Action:  "Use --force to overwrite it.",
		},
	},

	// ===================
	// Configuration & CLI
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is missing.",
		},
	},
	{
		err: ErrValueOutOfRange,
		info: ErrorInfo{
			Message: "A configuration value is out of range.",
			Action:  "Check ~/.tasklist/config.yaml and .tasklist/config.yaml.",
		},
	},
	{
		err: ErrInvalidIDPrefix,
		info: ErrorInfo{
			Message: "The task id prefix must not contain whitespace.",
			Action:  "Fix tasks.id_prefix in your configuration.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "This operation needs confirmation.",
			Action:  "Re-run with --force.",
		},
	},
	{
		err: ErrMenuCanceled,
		info: ErrorInfo{
			Message: "Canceled.",
		},
	},
	{
		err: ErrTTYRequired,
		info: ErrorInfo{
			Message: "The interactive UI needs a terminal.",
			Action:  "Use 'tasklist list' for non-interactive output.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// Direct sentinel matches hit the map; wrapped errors fall back to errors.Is().
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
// The action is empty when there is nothing useful to suggest.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
