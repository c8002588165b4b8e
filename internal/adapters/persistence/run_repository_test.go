package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/adapters/persistence"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/greenhouse"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/test/helpers"
)

var opening = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

func sampleRun(id string, started time.Time) *simulation.RunRecord {
	return &simulation.RunRecord{
		ID:             id,
		GreenhouseName: "Greenhouse",
		Seed:           ^uint64(0),
		StartedAt:      started,
		FinishedAt:     started.Add(time.Second),
		Days: []simulation.DaySummary{
			{
				Day: 1, Date: opening, BusinessLevel: simulation.BusinessHigh,
				Customers: 4, OrdersCompleted: 2, OrdersFailed: 1, Escalations: 1, Revenue: shared.Dollars(31.5),
				Census: greenhouse.Census{Total: 10, Seedling: 4, Mature: 6},
			},
			{
				Day: 2, Date: opening.Add(24 * time.Hour), BusinessLevel: simulation.BusinessLow,
				Customers: 1, OrdersCompleted: 1, Revenue: shared.Dollars(8.5), Pruned: 2,
			},
		},
		Orders: []simulation.OrderRecord{
			{OrderID: "o-1", Day: 1, Customer: "Ada #1", Cashier: "Cashier-1", Status: "COMPLETED", Plants: 2, Total: shared.Dollars(20)},
			{OrderID: "o-2", Day: 1, Customer: "Bo #2", Status: "CANCELLED", Reason: "out of stock"},
		},
	}
}

func TestRunRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)
	run := sampleRun("run-1", opening)

	// Act
	require.NoError(t, repo.Save(context.Background(), run))
	found, err := repo.FindByID(context.Background(), "run-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Greenhouse", found.GreenhouseName)
	assert.Equal(t, run.Seed, found.Seed)
	assert.True(t, found.StartedAt.Equal(run.StartedAt))
	require.Len(t, found.Days, 2)
	assert.Equal(t, 1, found.Days[0].Day)
	assert.Equal(t, simulation.BusinessHigh, found.Days[0].BusinessLevel)
	assert.Equal(t, 6, found.Days[0].Census.Mature)
	assert.Equal(t, 2, found.Days[1].Pruned)
	assert.Equal(t, shared.Dollars(40), found.Revenue())
	require.Len(t, found.Orders, 2)
	assert.Equal(t, "o-1", found.Orders[0].OrderID)
	assert.Equal(t, "out of stock", found.Orders[1].Reason)
}

func TestRunRepository_FindMissingRun(t *testing.T) {
	repo := helpers.NewTestRunRepository(t)

	_, err := repo.FindByID(context.Background(), "nope")

	var nf *shared.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestRunRepository_ListRecentNewestFirst(t *testing.T) {
	repo := helpers.NewTestRunRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, sampleRun("old", opening)))
	require.NoError(t, repo.Save(ctx, sampleRun("new", opening.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, sampleRun("mid", opening.Add(time.Minute))))

	runs, err := repo.ListRecent(ctx, 2)

	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "mid", runs[1].ID)
	assert.Len(t, runs[0].Days, 2)
}

func TestRunRepository_RejectsDuplicatesAndMissingID(t *testing.T) {
	repo := helpers.NewTestRunRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, sampleRun("dup", opening)))

	assert.Error(t, repo.Save(ctx, sampleRun("dup", opening)))
	assert.Error(t, repo.Save(ctx, sampleRun("", opening)))
}

func TestRunRepository_StoresARealRun(t *testing.T) {
	// Arrange
	repo := helpers.NewTestRunRepository(t)
	settings := simulation.DefaultSettings()
	settings.Days = 2
	sim, err := simulation.New(settings, catalog.Default())
	require.NoError(t, err)
	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	// Act
	err = repo.Save(context.Background(), &simulation.RunRecord{
		ID:             result.RunID,
		GreenhouseName: settings.GreenhouseName,
		Seed:           result.Seed,
		StartedAt:      opening,
		FinishedAt:     opening,
		Days:           result.Days,
		Orders:         result.Orders,
	})
	require.NoError(t, err)
	found, err := repo.FindByID(context.Background(), result.RunID)

	// Assert
	require.NoError(t, err)
	assert.Len(t, found.Days, 2)
	assert.Len(t, found.Orders, len(result.Orders))
	assert.Equal(t, result.Totals().Revenue, found.Revenue())
}
