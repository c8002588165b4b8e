package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation/queries"
)

// NewInventoryCommand creates the inventory command
func NewInventoryCommand() *cobra.Command {
	var (
		flags  runFlags
		after  int
		emojis bool
	)

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Show the greenhouse tree and supply stock",
		Long: `Show the plant inventory tree, census and supply stock.

With --after N the configured simulation is played for N days first;
by default the opening inventory is shown.

Examples:
  greenhouse inventory
  greenhouse inventory --after 5 --seed 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			settings, err := flags.settings(cmd, app)
			if err != nil {
				return err
			}
			if after > settings.Days {
				settings.Days = after
			}

			result, err := app.mediator.Send(app.context(cmd), &queries.GetInventoryReportQuery{Settings: settings, AfterDays: after})
			if err != nil {
				return fmt.Errorf("failed to build inventory report: %w", err)
			}
			report := result.(*queries.InventoryReport)

			out := cmd.OutOrStdout()
			printTitle(out, fmt.Sprintf("Inventory after day %d", report.Day))
			fmt.Fprint(out, NewTreeFormatter(!noColor, emojis).FormatTree(report.Greenhouse.Root()))
			fmt.Fprintln(out)
			displayCensus(out, report.Census)
			fmt.Fprintln(out)
			displaySupplies(out, report.Supplies)
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVar(&after, "after", 0, "Days to simulate before reporting")
	cmd.Flags().BoolVar(&emojis, "emoji", false, "Use emoji stage icons")

	return cmd
}
