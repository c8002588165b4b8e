package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/greenhouse-go/internal/application/common"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/greenhouse"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

// GetInventoryReportQuery reports the shop's inventory after a number of
// simulated days. Zero days reports the opening inventory.
type GetInventoryReportQuery struct {
	Settings  simulation.Settings
	AfterDays int
}

// InventoryReport is a read-only view of the greenhouse and supplies
type InventoryReport struct {
	Day        int
	Greenhouse *greenhouse.Manager
	Census     greenhouse.Census
	Supplies   []supplies.StockLevel
}

// GetInventoryReportHandler handles the GetInventoryReport query
type GetInventoryReportHandler struct {
	catalog *catalog.Catalog
}

// NewGetInventoryReportHandler creates a new GetInventoryReportHandler
func NewGetInventoryReportHandler(cat *catalog.Catalog) *GetInventoryReportHandler {
	return &GetInventoryReportHandler{catalog: cat}
}

// Handle executes the GetInventoryReport query
func (h *GetInventoryReportHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetInventoryReportQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetInventoryReportQuery")
	}
	if query.AfterDays < 0 {
		return nil, fmt.Errorf("after days must not be negative, got %d", query.AfterDays)
	}

	sim, err := simulation.New(query.Settings, h.catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to configure simulation: %w", err)
	}
	for sim.Day() < query.AfterDays {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sim.RunDay(ctx)
	}

	return &InventoryReport{
		Day:        sim.Day(),
		Greenhouse: sim.Greenhouse(),
		Census:     sim.Greenhouse().Census(),
		Supplies:   sim.Supplies().Levels(),
	}, nil
}
