package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/greenhouse-go/internal/infrastructure/config"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the plant catalog",
		Long: `Inspect the plant catalog in use.

The built-in catalog is replaced by catalog.file in configuration.

Examples:
  greenhouse catalog list
  greenhouse catalog list --category succulent
  greenhouse catalog export --out plants.yaml`,
	}

	cmd.AddCommand(newCatalogListCommand())
	cmd.AddCommand(newCatalogExportCommand())

	return cmd
}

func newCatalogListCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog plants",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			plants := app.catalog.All()
			if category != "" {
				plants = app.catalog.ByCategory(category)
			}

			out := cmd.OutOrStdout()
			printTitle(out, fmt.Sprintf("%d plants", len(plants)))
			displayPlants(out, plants)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list one category")

	return cmd
}

func newCatalogExportCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as YAML",
		Long: `Write the catalog in the catalog file format.

The output can be edited and loaded back through catalog.file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			data, err := config.MarshalCatalog(app.catalog)
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write catalog: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d plants to %s\n", app.catalog.Len(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default stdout)")

	return cmd
}
