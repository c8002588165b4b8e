package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/greenhouse-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		Long: `Inspect the effective configuration.

Configuration is loaded from multiple sources with priority:
1. Environment variables (GH_* prefix, DATABASE_URL)
2. Config file (config.yaml)
3. Default values

Example:
  greenhouse config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(cmd.ErrOrStderr(), "Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			out := cmd.OutOrStdout()
			sim := cfg.Simulation
			fmt.Fprintln(out, "Greenhouse Configuration")
			fmt.Fprintln(out, "========================")

			fmt.Fprintln(out, "\nSimulation:")
			fmt.Fprintf(out, "  Greenhouse:       %s\n", sim.GreenhouseName)
			fmt.Fprintf(out, "  Days:             %d (from %s)\n", sim.Days, sim.OpeningDate)
			fmt.Fprintf(out, "  Seed:             %d\n", sim.Seed)
			fmt.Fprintf(out, "  Business levels:  %s\n", orDash(strings.Join(sim.BusinessLevels, ", ")))
			fmt.Fprintf(out, "  Customers/level:  %s\n", formatCounts(sim.CustomersPerLevel))
			fmt.Fprintf(out, "  Staffing:         %s (capacity %d)\n", formatCounts(sim.Staffing), sim.Capacity)
			fmt.Fprintf(out, "  Plant selection:  %s\n", formatCounts(sim.PlantSelection))
			fmt.Fprintf(out, "  Restock:          below %d, plant %d\n", sim.RestockThreshold, sim.RestockAmount)

			fmt.Fprintln(out, "\nCatalog:")
			fmt.Fprintf(out, "  File:             %s\n", orDash(cfg.Catalog.File))

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			if cfg.Database.Type == "sqlite" {
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			} else if cfg.Database.URL != "" {
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			} else {
				fmt.Fprintf(out, "  Host:             %s:%d\n", cfg.Database.Host, cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
			}

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Endpoint:         %s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
			return nil
		},
	}

	return cmd
}

func formatCounts(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return orDash(strings.Join(parts, ", "))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// maskPassword hides the password in a database URL
func maskPassword(url string) string {
	at := strings.LastIndex(url, "@")
	scheme := strings.Index(url, "://")
	if at < 0 || scheme < 0 {
		return url
	}
	creds := url[scheme+3 : at]
	colon := strings.Index(creds, ":")
	if colon < 0 {
		return url
	}
	return url[:scheme+3] + creds[:colon] + ":****" + url[at:]
}
