package tui

import (
	"context"
	stderrors "errors"

	tea "charm.land/bubbletea/v2"

	"github.com/mrz1836/tasklist/internal/app"
	"github.com/mrz1836/tasklist/internal/ctxutil"
)

// Run starts the task list screen and blocks until the user quits or ctx is
// canceled. Cancellation is a normal exit and returns nil.
// Extra program options (input and output overrides) are passed through.
func Run(ctx context.Context, a *app.App, opts Options, programOpts ...tea.ProgramOption) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	logger := opts.Logger.With().Str("component", "tui").Logger()
	logger.Debug().
		Int("tasks", a.Store().Len()).
		Str("filter", a.Store().Filter().String()).
		Msg("starting task list screen")

	all := append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)
	p := tea.NewProgram(New(a, opts), all...)

	_, err := p.Run()
	if err != nil && ctxutil.Canceled(ctx) != nil &&
		(stderrors.Is(err, tea.ErrProgramKilled) || stderrors.Is(err, context.Canceled)) {
		logger.Debug().Msg("task list screen interrupted")
		return nil
	}
	if err != nil {
		return err
	}

	logger.Debug().
		Int("tasks", a.Store().Len()).
		Uint64("revision", a.Store().Revision()).
		Msg("task list screen closed")
	return nil
}
