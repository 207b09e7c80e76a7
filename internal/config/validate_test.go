package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tasklist/internal/constants"
	tlerrors "github.com/mrz1836/tasklist/internal/errors"
)

func TestValidate_NilConfig(t *testing.T) {
	t.Parallel()

	err := Validate(nil)
	require.ErrorIs(t, err, tlerrors.ErrConfigNil)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, Validate(cfg))

	assert.Empty(t, cfg.Tasks.SeedFile)
	assert.Equal(t, "todo-", cfg.Tasks.IDPrefix)
	assert.False(t, cfg.Tasks.Strict)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, 48, cfg.UI.NameWidth)
	assert.False(t, cfg.UI.ShowHelp)
	assert.Equal(t, "All", cfg.UI.DefaultFilter)
	assert.Equal(t, constants.DefaultStatusTimeout, cfg.UI.StatusTimeout)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty id prefix", mutate: func(c *Config) { c.Tasks.IDPrefix = "" }},
		{name: "minimum name width", mutate: func(c *Config) { c.UI.NameWidth = constants.MinNameWidth }},
		{name: "maximum name width", mutate: func(c *Config) { c.UI.NameWidth = constants.MaxNameWidth }},
		{name: "zero status timeout", mutate: func(c *Config) { c.UI.StatusTimeout = 0 }},
		{
			name:    "id prefix with space",
			mutate:  func(c *Config) { c.Tasks.IDPrefix = "my todo-" },
			wantErr: tlerrors.ErrInvalidIDPrefix,
		},
		{
			name:    "id prefix with tab",
			mutate:  func(c *Config) { c.Tasks.IDPrefix = "todo\t" },
			wantErr: tlerrors.ErrInvalidIDPrefix,
		},
		{
			name:    "name width below range",
			mutate:  func(c *Config) { c.UI.NameWidth = constants.MinNameWidth - 1 },
			wantErr: tlerrors.ErrValueOutOfRange,
		},
		{
			name:    "name width above range",
			mutate:  func(c *Config) { c.UI.NameWidth = constants.MaxNameWidth + 1 },
			wantErr: tlerrors.ErrValueOutOfRange,
		},
		{
			name:    "negative status timeout",
			mutate:  func(c *Config) { c.UI.StatusTimeout = -time.Second },
			wantErr: tlerrors.ErrValueOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ErrorMentionsKey(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.UI.NameWidth = 2

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.name_width")
	assert.Contains(t, err.Error(), "got 2")
}
