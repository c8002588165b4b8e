package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/andrescamacho/greenhouse-go/internal/adapters/metrics"
	"github.com/andrescamacho/greenhouse-go/internal/adapters/persistence"
	catalogQueries "github.com/andrescamacho/greenhouse-go/internal/application/catalog/queries"
	"github.com/andrescamacho/greenhouse-go/internal/application/common"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation/commands"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation/queries"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/infrastructure/config"
	"github.com/andrescamacho/greenhouse-go/internal/infrastructure/database"
	"github.com/andrescamacho/greenhouse-go/internal/infrastructure/logging"
)

// appOptions selects the optional services a command needs
type appOptions struct {
	database bool
	metrics  bool
}

// application holds the configuration and wired services for one command
type application struct {
	cfg      *config.Config
	logger   *logrus.Logger
	catalog  *catalog.Catalog
	mediator common.Mediator
	db       *gorm.DB
	closers  []io.Closer
}

// newApplication loads configuration and wires the mediator with every
// handler the command line can reach
func newApplication(opts appOptions) (*application, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, logCloser, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}
	app := &application{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	app.catalog, err = config.LoadCatalog(cfg.Catalog)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	app.mediator = common.NewMediator()
	app.mediator.Use(common.LoggingMiddleware())

	var recorder simulation.MetricsRecorder
	if opts.metrics && cfg.Metrics.Enabled {
		metrics.InitRegistry()
		commandCollector := metrics.NewCommandMetricsCollector()
		simulationCollector := metrics.NewSimulationMetricsCollector()
		if err := errors.Join(commandCollector.Register(), simulationCollector.Register()); err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		app.mediator.Use(metrics.PrometheusMiddleware(commandCollector))
		recorder = simulationCollector
	}

	var runs simulation.RunRepository
	if opts.database {
		app.db, err = database.Open(&cfg.Database)
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		runs = persistence.NewGormRunRepository(app.db)
	}

	if err := app.register(runs, recorder); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

func (a *application) register(runs simulation.RunRepository, recorder simulation.MetricsRecorder) error {
	regs := []error{
		common.RegisterHandler[*commands.RunSimulationCommand](a.mediator, commands.NewRunSimulationHandler(a.catalog, runs, recorder, nil)),
		common.RegisterHandler[*queries.GetInventoryReportQuery](a.mediator, queries.NewGetInventoryReportHandler(a.catalog)),
		common.RegisterHandler[*catalogQueries.GetPlantAdviceQuery](a.mediator, catalogQueries.NewGetPlantAdviceHandler(a.catalog)),
	}
	if runs != nil {
		history := queries.NewListRunsHandler(runs)
		regs = append(regs,
			common.RegisterHandler[*queries.ListRunsQuery](a.mediator, history),
			common.RegisterHandler[*queries.GetRunQuery](a.mediator, history),
		)
	}
	if err := errors.Join(regs...); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

// context returns the command context carrying a logger tagged with the command name
func (a *application) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return common.WithLogger(ctx, logging.NewAdapter(a.logger, logrus.Fields{"command": cmd.CommandPath()}))
}

// Close releases the database and log file
func (a *application) Close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, database.Close(a.db))
	}
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// splitList parses a comma separated flag value, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
