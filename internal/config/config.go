// Package config provides configuration management for tasklist with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by the caller via LoadWithOverrides)
//  2. Environment variables (TASKLIST_* prefix, "." replaced by "_")
//  3. Project config (.tasklist/config.yaml), or the file named by --config
//  4. Global config (~/.tasklist/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import "time"

// Config is the root configuration structure for tasklist.
type Config struct {
	// Tasks contains settings for the task store.
	Tasks TasksConfig `yaml:"tasks" mapstructure:"tasks"`

	// UI contains settings for the interactive terminal UI.
	UI UIConfig `yaml:"ui" mapstructure:"ui"`
}

// TasksConfig contains settings for the task store.
type TasksConfig struct {
	// SeedFile is the YAML file holding the starting tasks.
	// Empty means start with an empty list.
	// Default: ""
	SeedFile string `yaml:"seed_file" mapstructure:"seed_file"`

	// IDPrefix is prepended to every generated task id.
	// Must not contain whitespace.
	// Default: "todo-"
	IDPrefix string `yaml:"id_prefix" mapstructure:"id_prefix"`

	// Strict makes mutations of unknown ids and blank names return errors
	// instead of being ignored or accepted.
	// Default: false
	Strict bool `yaml:"strict" mapstructure:"strict"`
}

// UIConfig contains settings for the interactive terminal UI.
type UIConfig struct {
	// AltScreen runs the UI in the terminal's alternate screen buffer.
	// Default: true
	AltScreen bool `yaml:"alt_screen" mapstructure:"alt_screen"`

	// NameWidth is the maximum display width of a task name before it is truncated.
	// Default: 48, Valid range: 8-512
	NameWidth int `yaml:"name_width" mapstructure:"name_width"`

	// ShowHelp starts the UI with the full key help expanded.
	// Default: false
	ShowHelp bool `yaml:"show_help" mapstructure:"show_help"`

	// DefaultFilter is the filter selected at startup ("All", "Active" or "Completed").
	// Parsed case-insensitively by the caller.
	// Default: "All"
	DefaultFilter string `yaml:"default_filter" mapstructure:"default_filter"`

	// StatusTimeout is how long an inline status or error line stays visible.
	// Default: 4s
	StatusTimeout time.Duration `yaml:"status_timeout" mapstructure:"status_timeout"`
}
