package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation/queries"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
)

type stubRuns struct {
	runs  []*simulation.RunRecord
	limit int
}

func (s *stubRuns) Save(ctx context.Context, run *simulation.RunRecord) error { return nil }

func (s *stubRuns) FindByID(ctx context.Context, id string) (*simulation.RunRecord, error) {
	for _, r := range s.runs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("run not found")
}

func (s *stubRuns) ListRecent(ctx context.Context, limit int) ([]*simulation.RunRecord, error) {
	s.limit = limit
	return s.runs, nil
}

func TestGetInventoryReport_OpeningInventory(t *testing.T) {
	h := queries.NewGetInventoryReportHandler(catalog.Default())
	settings := simulation.DefaultSettings()

	resp, err := h.Handle(context.Background(), &queries.GetInventoryReportQuery{Settings: settings})

	require.NoError(t, err)
	report := resp.(*queries.InventoryReport)
	assert.Zero(t, report.Day)
	assert.Equal(t, 26, report.Census.Total)
	assert.Len(t, report.Supplies, len(settings.Supplies))
}

func TestGetInventoryReport_AfterDays(t *testing.T) {
	h := queries.NewGetInventoryReportHandler(catalog.Default())

	resp, err := h.Handle(context.Background(), &queries.GetInventoryReportQuery{
		Settings:  simulation.DefaultSettings(),
		AfterDays: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.(*queries.InventoryReport).Day)

	_, err = h.Handle(context.Background(), &queries.GetInventoryReportQuery{AfterDays: -1})
	assert.Error(t, err)
}

func TestListRuns_DefaultsLimitAndFindsByID(t *testing.T) {
	repo := &stubRuns{runs: []*simulation.RunRecord{{ID: "a"}, {ID: "b"}}}
	h := queries.NewListRunsHandler(repo)

	resp, err := h.Handle(context.Background(), &queries.ListRunsQuery{})
	require.NoError(t, err)
	assert.Len(t, resp.(*queries.ListRunsResponse).Runs, 2)
	assert.Equal(t, 10, repo.limit)

	run, err := h.Handle(context.Background(), &queries.GetRunQuery{RunID: "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", run.(*simulation.RunRecord).ID)

	_, err = h.Handle(context.Background(), &queries.GetRunQuery{RunID: "zzz"})
	assert.Error(t, err)
}
