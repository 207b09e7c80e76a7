package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mrz1836/tasklist/internal/config"
	"github.com/mrz1836/tasklist/internal/ctxutil"
	"github.com/mrz1836/tasklist/internal/errors"
	"github.com/mrz1836/tasklist/internal/seed"
	"github.com/mrz1836/tasklist/internal/tui"
)

// InitFlags holds flags specific to the init command.
type InitFlags struct {
	// Force overwrites an existing seed file without asking.
	Force bool
	// NoInteractive never prompts; an existing file is an error unless Force is set.
	NoInteractive bool
	// Path is where the seed file is written.
	Path string
}

// initResult is the JSON shape of the init command.
type initResult struct {
	Path    string `json:"path"`
	Tasks   int    `json:"tasks"`
	Written bool   `json:"written"`
}

// newInitCmd creates the init command for writing a sample seed file.
func newInitCmd(flags *InitFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample seed file",
		Long: `Write a seed file with a few sample tasks.

The file is written to .tasklist/tasks.yaml by default, which 'tasklist ui'
and 'tasklist list' pick up when no other seed file is configured.

If the file already exists you are asked before it is overwritten.
Use --force to overwrite without asking, and --no-interactive in scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output := cmd.Flag("output").Value.String()
			return runInit(cmd.Context(), cmd.OutOrStdout(), output, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "overwrite an existing seed file without asking")
	cmd.Flags().BoolVar(&flags.NoInteractive, "no-interactive", false, "never prompt; fail if the file exists and --force is not set")
	cmd.Flags().StringVar(&flags.Path, "path", config.DefaultSeedPath(), "where to write the seed file")

	return cmd
}

// AddInitCommand adds the init command to the root command.
func AddInitCommand(rootCmd *cobra.Command) {
	flags := &InitFlags{}
	rootCmd.AddCommand(newInitCmd(flags))
}

// runInit writes the sample seed file, asking before overwriting.
func runInit(ctx context.Context, w io.Writer, output string, flags *InitFlags) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	logger := GetLogger()
	out := tui.NewOutput(w, output)
	path := flags.Path

	if seed.Exists(path) && !flags.Force {
		if flags.NoInteractive || !terminalCheck() {
			return fmt.Errorf("%s: %w: %w", path, errors.ErrSeedExists, errors.ErrNonInteractiveMode)
		}

		overwrite, err := confirmOverwrite(path)
		if err != nil {
			return err
		}
		if !overwrite {
			logger.Debug().Str("path", path).Msg("kept existing seed file")
			if output == OutputJSON {
				return out.JSON(initResult{Path: path})
			}
			out.Info("Kept " + path + " unchanged.")
			return nil
		}
	}

	tasks := seed.Sample()
	if err := seed.Save(ctx, path, tasks); err != nil {
		return err
	}
	logger.Info().Str("path", path).Int("tasks", len(tasks)).Msg("wrote seed file")

	if output == OutputJSON {
		return out.JSON(initResult{Path: path, Tasks: len(tasks), Written: true})
	}

	out.Success(fmt.Sprintf("Wrote %d sample tasks to %s", len(tasks), path))
	if path == config.DefaultSeedPath() {
		out.Info("Run 'tasklist ui' to open it.")
	} else {
		out.Info("Run 'tasklist ui --seed " + path + "' to open it.")
	}
	return nil
}

// formRunner is an interface that matches huh.Form's Run method.
type formRunner interface {
	Run() error
}

// createOverwriteConfirmForm is the default factory for the overwrite prompt.
// This variable can be overridden in tests to inject mock forms.
//
//nolint:gochecknoglobals // Test injection point - standard Go testing pattern
var createOverwriteConfirmForm = defaultCreateOverwriteConfirmForm

// defaultCreateOverwriteConfirmForm creates the Charm Huh confirm form.
func defaultCreateOverwriteConfirmForm(path string, confirm *bool) formRunner {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite %s?", path)).
				Description("The existing tasks in this file will be replaced by the samples.").
				Affirmative("Yes, overwrite").
				Negative("No, keep it").
				Value(confirm),
		),
	).WithTheme(huh.ThemeCharm())
}

// confirmOverwrite asks whether path may be replaced.
// An aborted prompt returns ErrMenuCanceled.
func confirmOverwrite(path string) (bool, error) {
	var confirm bool
	form := createOverwriteConfirmForm(path, &confirm)
	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return false, errors.ErrMenuCanceled
		}
		return false, fmt.Errorf("failed to get confirmation: %w", err)
	}
	return confirm, nil
}
