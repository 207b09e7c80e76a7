package config

import (
	"strings"
	"unicode"

	"github.com/mrz1836/tasklist/internal/constants"
	"github.com/mrz1836/tasklist/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - tasks.id_prefix must not contain whitespace
//   - ui.name_width must be between 8 and 512
//   - ui.status_timeout must not be negative
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateTasksConfig(&cfg.Tasks); err != nil {
		return err
	}

	return validateUIConfig(&cfg.UI)
}

func validateTasksConfig(cfg *TasksConfig) error {
	if strings.IndexFunc(cfg.IDPrefix, unicode.IsSpace) >= 0 {
		return errors.Wrapf(errors.ErrInvalidIDPrefix,
			"tasks.id_prefix must not contain whitespace, got %q", cfg.IDPrefix)
	}
	return nil
}

func validateUIConfig(cfg *UIConfig) error {
	if cfg.NameWidth < constants.MinNameWidth || cfg.NameWidth > constants.MaxNameWidth {
		return errors.Wrapf(errors.ErrValueOutOfRange,
			"ui.name_width must be between %d and %d, got %d",
			constants.MinNameWidth, constants.MaxNameWidth, cfg.NameWidth)
	}

	if cfg.StatusTimeout < 0 {
		return errors.Wrapf(errors.ErrValueOutOfRange,
			"ui.status_timeout cannot be negative, got %s", cfg.StatusTimeout)
	}

	return nil
}
