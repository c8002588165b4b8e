package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/greenhouse-go/internal/application/common"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/greenhouse"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

// RunSimulationCommand plays a full simulation run
type RunSimulationCommand struct {
	Settings simulation.Settings
	// Persist saves the run to the history repository when one is configured
	Persist bool
}

// RunSimulationResponse carries the finished run and the final state of the shop
type RunSimulationResponse struct {
	Result     *simulation.RunResult
	Greenhouse *greenhouse.Manager
	Supplies   []supplies.StockLevel
	StartedAt  time.Time
	FinishedAt time.Time
	Saved      bool
}

// RunSimulationHandler handles the RunSimulation command
type RunSimulationHandler struct {
	catalog *catalog.Catalog
	runs    simulation.RunRepository
	metrics simulation.MetricsRecorder
	clock   shared.Clock
}

// NewRunSimulationHandler creates a new RunSimulationHandler. runs and
// metrics are optional.
func NewRunSimulationHandler(
	cat *catalog.Catalog,
	runs simulation.RunRepository,
	metrics simulation.MetricsRecorder,
	clock shared.Clock,
) *RunSimulationHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &RunSimulationHandler{
		catalog: cat,
		runs:    runs,
		metrics: metrics,
		clock:   clock,
	}
}

// Handle executes the RunSimulation command
func (h *RunSimulationHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RunSimulationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RunSimulationCommand")
	}

	var opts []simulation.Option
	if h.metrics != nil {
		opts = append(opts, simulation.WithMetrics(h.metrics))
	}

	sim, err := simulation.New(cmd.Settings, h.catalog, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to configure simulation: %w", err)
	}

	startedAt := h.clock.Now()
	result, err := sim.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("simulation interrupted on day %d: %w", sim.Day(), err)
	}
	finishedAt := h.clock.Now()

	resp := &RunSimulationResponse{
		Result:     result,
		Greenhouse: sim.Greenhouse(),
		Supplies:   sim.Supplies().Levels(),
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}

	if cmd.Persist && h.runs != nil {
		record := &simulation.RunRecord{
			ID:             result.RunID,
			GreenhouseName: cmd.Settings.GreenhouseName,
			Seed:           result.Seed,
			StartedAt:      startedAt,
			FinishedAt:     finishedAt,
			Days:           result.Days,
			Orders:         result.Orders,
		}
		if err := h.runs.Save(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save run %s: %w", result.RunID, err)
		}
		resp.Saved = true
	}

	return resp, nil
}
