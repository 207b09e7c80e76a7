package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/tasklist/internal/app"
	"github.com/mrz1836/tasklist/internal/config"
	"github.com/mrz1836/tasklist/internal/ctxutil"
	"github.com/mrz1836/tasklist/internal/domain"
	"github.com/mrz1836/tasklist/internal/errors"
	"github.com/mrz1836/tasklist/internal/seed"
	"github.com/mrz1836/tasklist/internal/store"
)

// SessionFlags are the flags shared by commands that open a task list.
type SessionFlags struct {
	// Seed is the YAML file with the starting tasks. Overrides tasks.seed_file.
	Seed string
	// Filter is the initial filter name. Overrides ui.default_filter.
	Filter string
}

// addSessionFlags registers --seed and --filter on cmd.
func addSessionFlags(cmd *cobra.Command, flags *SessionFlags) {
	cmd.Flags().StringVar(&flags.Seed, "seed", "", "YAML file with the starting tasks (default .tasklist/tasks.yaml when present)")
	cmd.Flags().StringVar(&flags.Filter, "filter", "", "initial filter: All, Active or Completed")
}

// session is an opened task list and the configuration it was built from.
type session struct {
	cfg      *config.Config
	app      *app.App
	seedPath string
}

// openSession loads configuration, reads the seed file and builds the app.
// When neither --seed nor tasks.seed_file is set, the default seed path is
// used if it exists; otherwise the list starts empty.
func openSession(ctx context.Context, configPath string, flags *SessionFlags, logger zerolog.Logger) (*session, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	overrides := &config.Config{
		Tasks: config.TasksConfig{SeedFile: flags.Seed},
		UI:    config.UIConfig{DefaultFilter: flags.Filter},
	}
	cfg, err := config.LoadWithOverrides(ctx, configPath, overrides)
	if err != nil {
		return nil, err
	}

	filter, err := domain.ParseFilter(cfg.UI.DefaultFilter)
	if err != nil {
		return nil, err
	}

	seedPath := cfg.Tasks.SeedFile
	if seedPath == "" && seed.Exists(config.DefaultSeedPath()) {
		seedPath = config.DefaultSeedPath()
	}

	var tasks []domain.Task
	if seedPath != "" {
		tasks, err = seed.Load(seedPath)
		if err != nil {
			return nil, err
		}
	}

	st, err := store.New(tasks,
		store.WithIDGenerator(store.NewUUIDGenerator(cfg.Tasks.IDPrefix)),
		store.WithStrict(cfg.Tasks.Strict),
		store.WithLogger(logger),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid seed file %s", seedPath)
	}
	st.SetFilter(filter)

	logger.Debug().
		Str("seed_file", seedPath).
		Int("tasks", st.Len()).
		Str("filter", filter.String()).
		Bool("strict", cfg.Tasks.Strict).
		Msg("opened task list")

	return &session{
		cfg:      cfg,
		app:      app.New(st, logger),
		seedPath: seedPath,
	}, nil
}
