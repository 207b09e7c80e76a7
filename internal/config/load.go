package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/mrz1836/tasklist/internal/constants"
	"github.com/mrz1836/tasklist/internal/ctxutil"
	"github.com/mrz1836/tasklist/internal/errors"
)

// newViperInstance creates a new Viper instance with the tasklist environment
// prefix (TASKLIST_), key replacer, and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(ctx context.Context, v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := ctxutil.Logger(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("tasks.seed_file", cfg.Tasks.SeedFile).
		Bool("tasks.strict", cfg.Tasks.Strict).
		Int("ui.name_width", cfg.UI.NameWidth).
		Msg("configuration loaded and unmarshaled")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// LoadFile reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (TASKLIST_* prefix)
//  2. path, or the project config (.tasklist/config.yaml) when path is empty
//  3. Global config (~/.tasklist/config.yaml)
//  4. Built-in defaults
//
// Missing global and project files are not an error. A non-empty path must exist.
func LoadFile(ctx context.Context, path string) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	if path == "" {
		if err := loadProjectConfig(v); err != nil {
			return nil, err
		}
		return unmarshalAndValidate(ctx, v)
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}
	return unmarshalAndValidate(ctx, v)
}

// loadGlobalConfig attempts to load the global config file (~/.tasklist/config.yaml).
// Returns nil if the file doesn't exist or home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, ok := getGlobalConfigPathIfExists()
	if !ok {
		return nil
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// getGlobalConfigPathIfExists returns the global config path if it exists.
func getGlobalConfigPathIfExists() (string, bool) {
	globalDir, err := GlobalConfigDir()
	if err != nil {
		return "", false
	}

	globalConfigPath := filepath.Join(globalDir, constants.ConfigFileName)
	if !fileExists(globalConfigPath) {
		return "", false
	}

	return globalConfigPath, true
}

// loadProjectConfig attempts to load the project config file (.tasklist/config.yaml).
// Returns nil if the file doesn't exist.
func loadProjectConfig(v *viper.Viper) error {
	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		return nil
	}

	v.SetConfigFile(projectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadWithOverrides loads configuration via LoadFile and applies CLI flag overrides.
//
// Only non-zero string values in overrides are applied. Boolean settings
// cannot be overridden here because false is indistinguishable from unset.
func LoadWithOverrides(ctx context.Context, path string, overrides *Config) (*Config, error) {
	cfg, err := LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}

	return cfg, nil
}

// setDefaults configures all default values on the Viper instance.
// These defaults match the values from DefaultConfig().
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("tasks.seed_file", def.Tasks.SeedFile)
	v.SetDefault("tasks.id_prefix", def.Tasks.IDPrefix)
	v.SetDefault("tasks.strict", def.Tasks.Strict)

	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("ui.name_width", def.UI.NameWidth)
	v.SetDefault("ui.show_help", def.UI.ShowHelp)
	v.SetDefault("ui.default_filter", def.UI.DefaultFilter)
	v.SetDefault("ui.status_timeout", def.UI.StatusTimeout.String())
}

// applyOverrides merges non-zero override values into the config.
func applyOverrides(cfg, overrides *Config) {
	if overrides.Tasks.SeedFile != "" {
		cfg.Tasks.SeedFile = overrides.Tasks.SeedFile
	}
	if overrides.Tasks.IDPrefix != "" {
		cfg.Tasks.IDPrefix = overrides.Tasks.IDPrefix
	}
	if overrides.UI.NameWidth != 0 {
		cfg.UI.NameWidth = overrides.UI.NameWidth
	}
	if overrides.UI.DefaultFilter != "" {
		cfg.UI.DefaultFilter = overrides.UI.DefaultFilter
	}
	if overrides.UI.StatusTimeout != 0 {
		cfg.UI.StatusTimeout = overrides.UI.StatusTimeout
	}
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to handle time.Duration conversion from strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
