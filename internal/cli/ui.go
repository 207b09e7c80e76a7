package cli

import (
	"context"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/tasklist/internal/ctxutil"
	"github.com/mrz1836/tasklist/internal/errors"
	"github.com/mrz1836/tasklist/internal/tui"
)

// UIFlags holds flags specific to the ui command.
type UIFlags struct {
	SessionFlags

	// NoAltScreen renders inline instead of in the alternate screen buffer.
	NoAltScreen bool
}

// terminalCheck is a variable for the terminal check function, allowing tests to override it.
//
//nolint:gochecknoglobals // Test injection point - standard Go testing pattern
var terminalCheck = isTerminal

// isTerminal returns true if both stdin and stdout are terminals.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// newUICmd creates the ui command.
func newUICmd(globals *GlobalFlags, flags *UIFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive task list",
		Long: `Open the task list in the terminal.

Keys:
  tab / shift+tab   move between the add input, filters, heading and list
  enter             add a task, press a filter, or save a rename
  space / x         toggle the task under the cursor
  e                 rename the task under the cursor
  d                 delete the task under the cursor
  esc               cancel a rename
  1 2 3             show All, Active or Completed
  ?                 toggle full help
  q / ctrl+c        quit

Logs go to ~/.tasklist/logs/tasklist.log while the list is open.

Examples:
  tasklist ui
  tasklist ui --seed tasks.yaml --filter active`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd.Context(), globals, flags)
		},
	}

	addSessionFlags(cmd, &flags.SessionFlags)
	cmd.Flags().BoolVar(&flags.NoAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")

	return cmd
}

// AddUICommand adds the ui command to the root command.
func AddUICommand(rootCmd *cobra.Command, globals *GlobalFlags) {
	rootCmd.AddCommand(newUICmd(globals, &UIFlags{}))
}

// runUI opens the task list screen and blocks until the user quits.
// Extra program options let tests replace the terminal.
func runUI(ctx context.Context, globals *GlobalFlags, flags *UIFlags, programOpts ...tea.ProgramOption) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if !terminalCheck() {
		return errors.ErrTTYRequired
	}

	// The screen owns the terminal from here on, so logs go to the file only.
	logger := InitFileLogger(globals.Verbose, globals.Quiet)
	setLogger(logger)
	ctx = ctxutil.WithLogger(ctx, logger)

	sess, err := openSession(ctx, globals.ConfigFile, &flags.SessionFlags, logger)
	if err != nil {
		return err
	}

	opts := tui.Options{
		AltScreen:     sess.cfg.UI.AltScreen && !flags.NoAltScreen,
		NameWidth:     sess.cfg.UI.NameWidth,
		ShowHelp:      sess.cfg.UI.ShowHelp,
		StatusTimeout: sess.cfg.UI.StatusTimeout,
		Logger:        logger,
	}

	return tui.Run(ctx, sess.app, opts, programOpts...)
}
