// Package logging provides logging utilities including sensitive data filtering.
//
// Task names are free text typed by the user and sometimes hold passwords or
// tokens ("rotate key sk-..."). Everything written to the log file goes through
// FilteringWriter, and task names attached to log events go through TaskName.
package logging

import (
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// MaxLoggedNameLen is the number of runes of a task name kept in log fields.
const MaxLoggedNameLen = 64

// sensitivePatterns contains compiled regular expressions for detecting sensitive values.
var sensitivePatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // Package-level patterns for reuse
	// Provider API keys (sk-..., sk-ant-...)
	regexp.MustCompile(`sk-ant-api[a-zA-Z0-9_-]+`),
	regexp.MustCompile(`sk-[a-zA-Z0-9]{20,}`),

	// GitHub tokens (ghp_, gho_, ghu_, ghs_, ghr_)
	regexp.MustCompile(`gh[pousr]_[a-zA-Z0-9]{20,}`),

	// Generic API keys
	regexp.MustCompile(`(?i)(api[_-]?key|apikey)\s*[:=]\s*["']?([a-zA-Z0-9_-]{16,})["']?`),

	// Bearer tokens
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9_-]{20,}`),

	// Secret assignments
	regexp.MustCompile(`(?i)(secret|password|credential|passwd|pwd|pin)\s*[:=]\s*["']?[^\s"']{4,}["']?`),

	// Private key headers
	regexp.MustCompile(`(?i)-----BEGIN[A-Z\s]+PRIVATE KEY-----`),

	// Long token assignments
	regexp.MustCompile(`(?i)(token|auth)\s*[:=]\s*["']?[a-zA-Z0-9+/=]{32,}["']?`),
}

// sensitiveFieldNames contains field names whose values are always redacted.
var sensitiveFieldNames = map[string]struct{}{ //nolint:gochecknoglobals // Package-level lookup
	"api_key":       {},
	"apikey":        {},
	"auth_token":    {},
	"password":      {},
	"passwd":        {},
	"secret":        {},
	"credential":    {},
	"credentials":   {},
	"private_key":   {},
	"access_token":  {},
	"refresh_token": {},
	"bearer":        {},
	"authorization": {},
}

// fieldNameSeparators split compound field names such as "db_password".
var fieldNameSeparators = []string{"_", "-"} //nolint:gochecknoglobals // Package-level lookup

// SensitiveDataHook is a zerolog hook that flags log entries whose message
// looks like it carries sensitive data.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a new SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements the zerolog.Hook interface.
// zerolog does not allow rewriting the message from a hook, so the entry is
// only marked; the redaction itself happens in FilteringWriter.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData checks if a string contains any sensitive data patterns.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive match in value with [REDACTED].
func FilterSensitiveValue(value string) string {
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedValue)
	}
	return result
}

// IsSensitiveFieldName checks if a field name indicates sensitive data.
// A name matches when it equals a sensitive name or contains one between
// separators, e.g. "db_password" or "password-hash".
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	if _, ok := sensitiveFieldNames[lowerName]; ok {
		return true
	}
	for word := range sensitiveFieldNames {
		if containsWordBoundary(lowerName, word, fieldNameSeparators) {
			return true
		}
	}
	return false
}

// containsWordBoundary reports whether word appears in name with a separator
// directly before or after it. An exact match is not a boundary match.
func containsWordBoundary(name, word string, seps []string) bool {
	if name == "" || word == "" || name == word {
		return false
	}
	for _, sep := range seps {
		if strings.HasPrefix(name, word+sep) ||
			strings.HasSuffix(name, sep+word) ||
			strings.Contains(name, sep+word+sep) {
			return true
		}
	}
	return false
}

// RedactIfSensitive returns [REDACTED] if the field name indicates sensitive data,
// otherwise the value with sensitive patterns filtered.
func RedactIfSensitive(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// TaskName prepares a task name for a log field: sensitive patterns are
// redacted and the result is cut to MaxLoggedNameLen runes.
//
//	logger.Debug().Str("task_name", logging.TaskName(name)).Msg("task added")
func TaskName(name string) string {
	filtered := FilterSensitiveValue(name)
	if utf8.RuneCountInString(filtered) <= MaxLoggedNameLen {
		return filtered
	}
	runes := []rune(filtered)
	return string(runes[:MaxLoggedNameLen]) + "..."
}

// FilteringWriter wraps an io.Writer and filters sensitive data from output.
// Log file writers are wrapped with it so secrets never reach disk.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a new FilteringWriter that wraps the given writer.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer, filtering sensitive data before writing.
// It reports the original length so callers never see a short write.
func (fw *FilteringWriter) Write(p []byte) (n int, err error) {
	filtered := FilterSensitiveValue(string(p))
	if _, err = fw.w.Write([]byte(filtered)); err != nil {
		return 0, err
	}
	return len(p), nil
}
