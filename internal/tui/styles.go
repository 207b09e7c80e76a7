// Package tui provides the interactive terminal UI for tasklist.
//
// The screen has four focus regions, visited in this order by tab:
// the add-task input, the filter buttons, the results heading, and the
// task list. Every key press is applied to the app and followed by one
// app.Commit; the focus signals it returns move the cursor between regions.
//
// # Semantic Colors
//
// Five semantic colors are used across the UI:
//   - ColorPrimary (Blue): focused region, cursor, pressed filter
//   - ColorSuccess (Green): completed tasks
//   - ColorWarning (Yellow): rename form
//   - ColorError (Red): inline errors
//   - ColorMuted (Gray): secondary text and help
//
// Colors are downsampled by the bubbletea renderer, which honors NO_COLOR.
package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for focus and the pressed filter.
	ColorPrimary color.Color = lipgloss.Color("39")

	// ColorSuccess is green, used for completed tasks.
	ColorSuccess color.Color = lipgloss.Color("42")

	// ColorWarning is yellow, used for the rename form.
	ColorWarning color.Color = lipgloss.Color("220")

	// ColorError is red, used for inline errors.
	ColorError color.Color = lipgloss.Color("203")

	// ColorMuted is gray, used for secondary text.
	ColorMuted color.Color = lipgloss.Color("241")
)

// Styles holds the lipgloss styles used by the task list screen.
type Styles struct {
	Title          lipgloss.Style
	Label          lipgloss.Style
	Heading        lipgloss.Style
	HeadingFocused lipgloss.Style
	Row            lipgloss.Style
	RowCursor      lipgloss.Style
	Completed      lipgloss.Style
	Rename         lipgloss.Style
	Filter         lipgloss.Style
	FilterPressed  lipgloss.Style
	FilterCursor   lipgloss.Style
	Status         lipgloss.Style
	Success        lipgloss.Style
	Warning        lipgloss.Style
	Error          lipgloss.Style
	Muted          lipgloss.Style
}

// NewStyles creates the default screen styles.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Label: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Heading: lipgloss.NewStyle().
			Bold(true),
		HeadingFocused: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(ColorPrimary),
		Row: lipgloss.NewStyle(),
		RowCursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Completed: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Strikethrough(true),
		Rename: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Filter: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),
		FilterPressed: lipgloss.NewStyle().
			Bold(true).
			Reverse(true).
			Foreground(ColorPrimary).
			Padding(0, 1),
		FilterCursor: lipgloss.NewStyle().
			Underline(true).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}
