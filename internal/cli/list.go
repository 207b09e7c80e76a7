package cli

import (
	"context"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/mrz1836/tasklist/internal/app"
	"github.com/mrz1836/tasklist/internal/domain"
	"github.com/mrz1836/tasklist/internal/tui"
)

// ListFlags holds flags specific to the list command.
type ListFlags struct {
	SessionFlags
}

// listResult is the JSON shape of the list command.
type listResult struct {
	Filter  domain.Filter `json:"filter"`
	Heading string        `json:"heading"`
	Total   int           `json:"total"`
	Tasks   []domain.Task `json:"tasks"`
}

// newListCmd creates the list command.
func newListCmd(globals *GlobalFlags, flags *ListFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the task list",
		Long: `Print the results heading and the tasks that pass the filter,
without opening the interactive screen.

Examples:
  tasklist list
  tasklist list --filter completed
  tasklist list --seed tasks.yaml --output json`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), globals, flags)
		},
	}

	addSessionFlags(cmd, &flags.SessionFlags)

	return cmd
}

// AddListCommand adds the list command to the root command.
func AddListCommand(rootCmd *cobra.Command, globals *GlobalFlags) {
	rootCmd.AddCommand(newListCmd(globals, &ListFlags{}))
}

// runList prints the visible tasks of the configured list.
func runList(ctx context.Context, w io.Writer, globals *GlobalFlags, flags *ListFlags) error {
	logger := GetLogger()

	sess, err := openSession(ctx, globals.ConfigFile, &flags.SessionFlags, logger)
	if err != nil {
		return err
	}

	view := sess.app.View()

	if globals.Output == OutputJSON {
		tasks := make([]domain.Task, 0, len(view.Rows))
		for _, row := range view.Rows {
			tasks = append(tasks, row.Task)
		}
		return tui.NewOutput(w, OutputJSON).JSON(listResult{
			Filter:  view.Filter,
			Heading: view.Heading,
			Total:   view.Total,
			Tasks:   tasks,
		})
	}

	return outputListText(w, view)
}

// outputListText prints the heading and one line per visible task.
func outputListText(w io.Writer, view app.View) error {
	styles := tui.NewStyles()

	title := styles.Heading.Render(view.Heading)
	if view.Filter != domain.FilterAll {
		title += styles.Muted.Render(" (" + view.Filter.String() + ")")
	}
	if _, err := lipgloss.Fprintln(w, title); err != nil {
		return fmt.Errorf("failed to write task list: %w", err)
	}

	for _, row := range view.Rows {
		box, name := "[ ]", styles.Row.Render(row.Task.Name)
		if row.Task.Completed {
			box, name = "[x]", styles.Completed.Render(row.Task.Name)
		}
		if _, err := lipgloss.Fprintln(w, "  "+box+" "+name); err != nil {
			return fmt.Errorf("failed to write task list: %w", err)
		}
	}

	return nil
}
