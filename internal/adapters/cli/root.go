package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
	noColor    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "greenhouse",
		Short: "Greenhouse - simulate a garden center",
		Long: `Greenhouse simulates a garden center day by day: plants grow and die,
customers place orders and ask for advice, and staff handle what they can.

Configuration is read from config.yaml (or --config), GH_* environment
variables and a .env file.

Examples:
  greenhouse run --days 14 --seed 7
  greenhouse run --persist --levels LOW,HIGH,MEDIUM
  greenhouse inventory --after 3
  greenhouse advise --sunlight high --water low
  greenhouse catalog list
  greenhouse history list`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewInventoryCommand())
	rootCmd.AddCommand(NewAdviseCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
