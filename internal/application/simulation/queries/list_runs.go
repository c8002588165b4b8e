package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/greenhouse-go/internal/application/common"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
)

const defaultRunLimit = 10

// ListRunsQuery lists the most recent saved runs
type ListRunsQuery struct {
	Limit int
}

// ListRunsResponse holds saved runs, newest first
type ListRunsResponse struct {
	Runs []*simulation.RunRecord
}

// GetRunQuery loads one saved run by ID
type GetRunQuery struct {
	RunID string
}

// ListRunsHandler handles the ListRuns and GetRun queries
type ListRunsHandler struct {
	runs simulation.RunRepository
}

// NewListRunsHandler creates a new ListRunsHandler
func NewListRunsHandler(runs simulation.RunRepository) *ListRunsHandler {
	return &ListRunsHandler{runs: runs}
}

// Handle executes a ListRuns or GetRun query
func (h *ListRunsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	switch query := request.(type) {
	case *ListRunsQuery:
		limit := query.Limit
		if limit <= 0 {
			limit = defaultRunLimit
		}
		runs, err := h.runs.ListRecent(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list runs: %w", err)
		}
		return &ListRunsResponse{Runs: runs}, nil
	case *GetRunQuery:
		run, err := h.runs.FindByID(ctx, query.RunID)
		if err != nil {
			return nil, fmt.Errorf("failed to load run %s: %w", query.RunID, err)
		}
		return run, nil
	}
	return nil, fmt.Errorf("invalid request type: expected *ListRunsQuery or *GetRunQuery")
}
