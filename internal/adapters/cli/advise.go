package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogQueries "github.com/andrescamacho/greenhouse-go/internal/application/catalog/queries"
)

// NewAdviseCommand creates the advise command
func NewAdviseCommand() *cobra.Command {
	var sunlight, water, category string

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Recommend plants for given care conditions",
		Long: `Recommend plants whose sunlight and water needs match.

Levels are LOW, MEDIUM or HIGH. Omitted criteria match anything.

Examples:
  greenhouse advise --sunlight high --water low
  greenhouse advise --category herb`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.mediator.Send(app.context(cmd), &catalogQueries.GetPlantAdviceQuery{
				Sunlight: sunlight,
				Water:    water,
				Category: category,
			})
			if err != nil {
				return err
			}
			response := result.(*catalogQueries.GetPlantAdviceResponse)

			out := cmd.OutOrStdout()
			printTitle(out, "Recommendations for "+response.Criteria.String())
			if len(response.Recommendations) == 0 {
				fmt.Fprintln(out, "No plants match.")
				return nil
			}
			displayPlants(out, response.Recommendations)
			return nil
		},
	}

	cmd.Flags().StringVar(&sunlight, "sunlight", "", "Sunlight level (LOW, MEDIUM, HIGH)")
	cmd.Flags().StringVar(&water, "water", "", "Water level (LOW, MEDIUM, HIGH)")
	cmd.Flags().StringVar(&category, "category", "", "Plant category")

	return cmd
}
