package config

import "github.com/mrz1836/tasklist/internal/constants"

// DefaultFilter is the filter name selected when none is configured.
const DefaultFilter = "All"

// DefaultConfig returns a new Config with default values.
// These defaults are the base layer that config files, environment
// variables, and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		Tasks: TasksConfig{
			SeedFile: "",
			IDPrefix: constants.DefaultIDPrefix,
			Strict:   false,
		},
		UI: UIConfig{
			AltScreen:     true,
			NameWidth:     constants.DefaultNameWidth,
			ShowHelp:      false,
			DefaultFilter: DefaultFilter,
			StatusTimeout: constants.DefaultStatusTimeout,
		},
	}
}
