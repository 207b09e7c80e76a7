package constants

// Log file names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.tasklist/logs/tasklist.log
	CLILogFileName = "tasklist.log"
)

// Configuration and seed file names.
const (
	// ConfigFileName is the name of both the global and the project configuration file.
	ConfigFileName = "config.yaml"

	// SeedFileName is the default name of the YAML file holding the starting tasks.
	SeedFileName = "tasks.yaml"
)
