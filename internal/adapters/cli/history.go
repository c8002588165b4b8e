package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation/queries"
)

// NewHistoryCommand creates the history command with subcommands
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved simulation runs",
		Long: `Browse runs saved with 'greenhouse run --persist'.

Examples:
  greenhouse history list --limit 5
  greenhouse history show 5f0c...`,
	}

	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryShowCommand())

	return cmd
}

func newHistoryListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(appOptions{database: true})
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.mediator.Send(app.context(cmd), &queries.ListRunsQuery{Limit: limit})
			if err != nil {
				return err
			}
			displayRuns(cmd.OutOrStdout(), result.(*queries.ListRunsResponse).Runs)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to list")

	return cmd
}

func newHistoryShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(appOptions{database: true})
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.mediator.Send(app.context(cmd), &queries.GetRunQuery{RunID: args[0]})
			if err != nil {
				return err
			}
			run := result.(*simulation.RunRecord)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Greenhouse:   %s\n", run.GreenhouseName)
			fmt.Fprintf(out, "Started:      %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Duration:     %s\n", run.FinishedAt.Sub(run.StartedAt))
			displayRunSummary(out, &simulation.RunResult{
				RunID:  run.ID,
				Seed:   run.Seed,
				Days:   run.Days,
				Orders: run.Orders,
			})
			return nil
		},
	}

	return cmd
}
