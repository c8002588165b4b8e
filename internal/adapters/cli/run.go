package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/greenhouse-go/internal/adapters/metrics"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation/commands"
)

// runFlags are the overrides the run and inventory commands apply on top of configuration
type runFlags struct {
	days   int
	seed   uint64
	levels string
}

func (f *runFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.days, "days", 0, "Number of days to simulate (default from config)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed (default from config)")
	cmd.Flags().StringVar(&f.levels, "levels", "", "Comma separated business level per day, e.g. LOW,HIGH")
}

// settings builds run settings from configuration and flag overrides
func (f *runFlags) settings(cmd *cobra.Command, app *application) (simulation.Settings, error) {
	settings, err := app.cfg.Simulation.Settings()
	if err != nil {
		return simulation.Settings{}, err
	}
	if cmd.Flags().Changed("days") {
		settings.Days = f.days
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed = f.seed
	}
	if f.levels != "" {
		settings.BusinessLevels = nil
		for _, s := range splitList(f.levels) {
			level, err := simulation.ParseBusinessLevel(s)
			if err != nil {
				return simulation.Settings{}, err
			}
			settings.BusinessLevels = append(settings.BusinessLevels, level)
		}
	}
	return settings, nil
}

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var (
		flags      runFlags
		persist    bool
		showEvents bool
		showTree   bool
		linger     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a garden center simulation",
		Long: `Simulate the garden center for a number of days.

Each day plants age, the caretaker waters and restocks, customers visit and
staff handle their requests by priority. Requests nobody on shift can take
are logged and counted, never fatal.

When metrics are enabled in configuration the Prometheus endpoint is served
for the duration of the run plus --linger.

Examples:
  greenhouse run
  greenhouse run --days 30 --seed 99 --persist
  greenhouse run --levels LOW,LOW,HIGH --events --tree`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(appOptions{database: persist, metrics: true})
			if err != nil {
				return err
			}
			defer app.Close()

			settings, err := flags.settings(cmd, app)
			if err != nil {
				return err
			}

			if app.cfg.Metrics.Enabled {
				stop, err := serveMetrics(app)
				if err != nil {
					return err
				}
				defer func() {
					if linger > 0 {
						fmt.Fprintf(cmd.ErrOrStderr(), "Serving metrics for %s...\n", linger)
						time.Sleep(linger)
					}
					stop()
				}()
			}

			ctx := app.context(cmd)
			result, err := app.mediator.Send(ctx, &commands.RunSimulationCommand{Settings: settings, Persist: persist})
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}
			response := result.(*commands.RunSimulationResponse)

			out := cmd.OutOrStdout()
			if showEvents {
				displayEvents(out, response.Result.Events)
				fmt.Fprintln(out)
			}
			displayRunSummary(out, response.Result)
			if showTree {
				fmt.Fprintln(out)
				fmt.Fprint(out, NewTreeFormatter(!noColor, false).FormatTree(response.Greenhouse.Root()))
			}
			fmt.Fprintln(out)
			displaySupplies(out, response.Supplies)
			if response.Saved {
				fmt.Fprintf(out, "\nSaved run %s\n", response.Result.RunID)
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&persist, "persist", false, "Save the run to the history database")
	cmd.Flags().BoolVar(&showEvents, "events", false, "Print the event log")
	cmd.Flags().BoolVar(&showTree, "tree", false, "Print the final greenhouse tree")
	cmd.Flags().DurationVar(&linger, "linger", 0, "Keep the metrics endpoint up after the run")

	return cmd
}

// serveMetrics starts the Prometheus endpoint and returns its shutdown func
func serveMetrics(app *application) (func(), error) {
	server, err := metrics.NewServer(app.cfg.Metrics)
	if err != nil {
		return nil, err
	}
	go func() {
		if err := server.Start(); err != nil {
			app.logger.WithError(err).Error("metrics server stopped")
		}
	}()
	app.logger.WithField("addr", server.Addr()).Info("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			app.logger.WithError(err).Warn("metrics shutdown failed")
		}
	}, nil
}
