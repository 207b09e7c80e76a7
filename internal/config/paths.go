package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/tasklist/internal/constants"
	"github.com/mrz1836/tasklist/internal/errors"
)

// GlobalConfigDir returns the path to the global tasklist directory.
// TASKLIST_HOME overrides the location; otherwise it is ~/.tasklist.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	if home := os.Getenv(constants.HomeEnvVar); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.AppHome), nil
}

// ProjectConfigDir returns the relative path to the project configuration directory.
func ProjectConfigDir() string {
	return constants.AppHome
}

// GlobalConfigPath returns the full path to the global configuration file.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", fmt.Errorf("get global config path: %w", err)
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns the relative path to the project configuration file.
func ProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), constants.ConfigFileName)
}

// DefaultSeedPath returns the relative path `tasklist init` writes to by default.
func DefaultSeedPath() string {
	return filepath.Join(ProjectConfigDir(), constants.SeedFileName)
}
