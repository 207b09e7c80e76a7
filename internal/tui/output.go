package tui

import (
	"encoding/json"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/mrz1836/tasklist/internal/errors"
)

// Output writes command results outside the interactive screen.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error with its suggested action, if any.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// JSON outputs a value as formatted JSON.
	JSON(v any) error
}

// NewOutput returns JSON output for format "json" and styled text otherwise.
func NewOutput(w io.Writer, format string) Output {
	if format == "json" {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}

// TTYOutput provides styled output for terminal displays.
// Colors are downsampled to what w supports, so plain files get plain text.
type TTYOutput struct {
	w      io.Writer
	styles *Styles
}

// NewTTYOutput creates a new TTYOutput.
func NewTTYOutput(w io.Writer) *TTYOutput {
	return &TTYOutput{
		w:      w,
		styles: NewStyles(),
	}
}

// Success prints a success message.
func (o *TTYOutput) Success(msg string) {
	_, _ = lipgloss.Fprintln(o.w, o.styles.Success.Render("✓ "+msg))
}

// Error prints an error message followed by its suggested action.
func (o *TTYOutput) Error(err error) {
	msg, action := errors.Actionable(err)
	_, _ = lipgloss.Fprintln(o.w, o.styles.Error.Render("✗ "+msg))
	if action != "" {
		_, _ = lipgloss.Fprintln(o.w, o.styles.Muted.Render("  "+action))
	}
}

// Warning prints a warning message.
func (o *TTYOutput) Warning(msg string) {
	_, _ = lipgloss.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info prints an informational message.
func (o *TTYOutput) Info(msg string) {
	_, _ = lipgloss.Fprintln(o.w, o.styles.Muted.Render(msg))
}

// JSON outputs a value as formatted JSON.
func (o *TTYOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

// JSONOutput writes every message as one JSON object per line.
type JSONOutput struct {
	w io.Writer
}

// NewJSONOutput creates a new JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{w: w}
}

type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type jsonError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Success outputs {"type":"success","message":...}.
func (o *JSONOutput) Success(msg string) {
	o.message("success", msg)
}

// Error outputs {"type":"error",...} with the raw error as details.
func (o *JSONOutput) Error(err error) {
	msg, action := errors.Actionable(err)
	out := jsonError{Type: "error", Message: msg, Suggestion: action}
	if raw := err.Error(); raw != msg {
		out.Details = raw
	}
	//nolint:errchkjson // no error return by interface contract
	_ = json.NewEncoder(o.w).Encode(out)
}

// Warning outputs {"type":"warning","message":...}.
func (o *JSONOutput) Warning(msg string) {
	o.message("warning", msg)
}

// Info outputs {"type":"info","message":...}.
func (o *JSONOutput) Info(msg string) {
	o.message("info", msg)
}

// JSON outputs a value as formatted JSON.
func (o *JSONOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

func (o *JSONOutput) message(kind, msg string) {
	//nolint:errchkjson // no error return by interface contract
	_ = json.NewEncoder(o.w).Encode(jsonMessage{Type: kind, Message: msg})
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
