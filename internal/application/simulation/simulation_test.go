package simulation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/staff"
)

// quietSettings returns a run with no customers and no restocking so tests
// can switch on only what they exercise
func quietSettings() simulation.Settings {
	s := simulation.DefaultSettings()
	s.Days = 3
	s.BusinessLevels = []simulation.BusinessLevel{simulation.BusinessLow, simulation.BusinessLow, simulation.BusinessLow}
	s.CustomersPerLevel = map[simulation.BusinessLevel]int{}
	s.RestockAmount = 0
	s.PlantSelection = map[string]int{}
	return s
}

type fakeMetrics struct {
	days      int
	outcomes  int
	unhandled map[request.Category]int
}

func (f *fakeMetrics) RecordDay(simulation.DaySummary) { f.days++ }
func (f *fakeMetrics) RecordOutcome(staff.Outcome)     { f.outcomes++ }

func (f *fakeMetrics) RecordUnhandled(category request.Category) {
	if f.unhandled == nil {
		f.unhandled = make(map[request.Category]int)
	}
	f.unhandled[category]++
}

func TestNew_RejectsInvalidSettings(t *testing.T) {
	s := quietSettings()
	s.Days = 0

	_, err := simulation.New(s, catalog.Default())

	var ve *shared.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestNew_RejectsUnknownSpecies(t *testing.T) {
	s := quietSettings()
	s.PlantSelection = map[string]int{"triffid": 1}

	_, err := simulation.New(s, catalog.Default())

	var nf *shared.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestNew_HiresStaffThroughFactories(t *testing.T) {
	s := quietSettings()
	s.Staffing = map[staff.Role]int{staff.RoleManager: 1, staff.RoleCashier: 2}

	sim, err := simulation.New(s, catalog.Default())
	require.NoError(t, err)

	var names []string
	for _, e := range sim.Roster().Employees() {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"Cashier-1", "Cashier-2", "Manager-1"}, names)
}

func TestConfigurePlantSelection_SplitsMatureAndSeedlings(t *testing.T) {
	s := quietSettings()
	s.PlantSelection = map[string]int{"Rose": 4, "cactus": 1}
	s.InitialMatureFraction = 0.5

	sim, err := simulation.New(s, catalog.Default())
	require.NoError(t, err)

	census := sim.Greenhouse().Census()
	assert.Equal(t, 5, census.Total)
	assert.Equal(t, 2, census.BySpecies["rose"].Sellable)
	assert.Equal(t, 1, census.BySpecies["cactus"].Sellable)
	assert.Equal(t, []string{"Greenhouse", "flowering", "succulent"}, sim.Greenhouse().SectionNames())
}

func TestRunDay_UnhandledRequestsAreCountedNotFatal(t *testing.T) {
	// Arrange: only cashiers on shift, every customer browses
	s := quietSettings()
	s.Staffing = map[staff.Role]int{staff.RoleCashier: 1}
	s.CustomersPerLevel[simulation.BusinessLow] = 3
	s.Mix.OrderProbability = 0
	s.Mix.AdviceProbability = 0
	s.Mix.ComplaintProbability = 0
	s.PlantSelection = map[string]int{"rose": 2}
	metrics := &fakeMetrics{}
	sim, err := simulation.New(s, catalog.Default(), simulation.WithMetrics(metrics))
	require.NoError(t, err)

	// Act
	day := sim.RunDay(context.Background())

	// Assert: three queries plus the opening move of the flowering section
	assert.Equal(t, 1, day.Day)
	assert.Equal(t, 3, day.Customers)
	assert.Equal(t, 4, day.Unhandled)
	assert.Zero(t, day.QueriesAnswered)
	assert.Equal(t, 3, metrics.unhandled[request.CategoryQuery])
	assert.Equal(t, 1, metrics.unhandled[request.CategoryMaintenance])
	assert.Equal(t, 1, metrics.days)
}

func TestRunDay_DehydratedPlantsArePruned(t *testing.T) {
	// Arrange: no caretaker, so nobody waters the basil
	s := quietSettings()
	s.Staffing = map[staff.Role]int{staff.RoleManager: 1}
	s.PlantSelection = map[string]int{"basil": 2}
	s.InitialMatureFraction = 1
	sim, err := simulation.New(s, catalog.Default())
	require.NoError(t, err)

	// Act
	first := sim.RunDay(context.Background())
	second := sim.RunDay(context.Background())
	third := sim.RunDay(context.Background())

	// Assert
	assert.Zero(t, first.Died)
	assert.Zero(t, second.Died)
	assert.Equal(t, 2, third.Died)
	assert.Equal(t, 2, third.Pruned)
	assert.Zero(t, third.Census.Total)
	assert.Empty(t, sim.Greenhouse().Plants())
}

func TestRunDay_CaretakerWatersThirstySections(t *testing.T) {
	s := quietSettings()
	s.Staffing = map[staff.Role]int{staff.RoleCaretaker: 1}
	s.PlantSelection = map[string]int{"basil": 2}
	s.InitialMatureFraction = 1
	sim, err := simulation.New(s, catalog.Default())
	require.NoError(t, err)

	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	totals := result.Totals()
	assert.Zero(t, totals.Died)
	assert.Equal(t, 2, totals.Census.Total)
	assert.Equal(t, 2, totals.Watered)
	assert.Equal(t, 2, totals.Moved)
}

func TestRunDay_RestocksSpeciesBelowThreshold(t *testing.T) {
	s := quietSettings()
	s.Staffing = map[staff.Role]int{staff.RoleCaretaker: 1}
	s.PlantSelection = map[string]int{"rose": 1}
	s.RestockThreshold = 2
	s.RestockAmount = 3
	sim, err := simulation.New(s, catalog.Default())
	require.NoError(t, err)

	first := sim.RunDay(context.Background())
	second := sim.RunDay(context.Background())

	assert.Equal(t, 3, first.PlantsPlanted)
	assert.Equal(t, 4, first.Census.Total)
	assert.Zero(t, second.PlantsPlanted)
}

func TestRun_OrdersBalanceRevenueAndEscalations(t *testing.T) {
	// Arrange
	s := simulation.DefaultSettings()
	s.Capacity = 0
	s.Mix.OrderProbability = 1
	s.Mix.ExtrasProbability = 0.5
	sim, err := simulation.New(s, catalog.Default())
	require.NoError(t, err)

	// Act
	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	// Assert
	totals := result.Totals()
	require.Len(t, result.Days, s.Days)
	assert.Equal(t, totals.Customers, totals.OrdersCompleted+totals.OrdersFailed)
	assert.Equal(t, totals.OrdersFailed, totals.Escalations)
	assert.Zero(t, totals.Unhandled)

	var revenue shared.Money
	completed := 0
	for _, o := range result.Orders {
		if o.Status == "COMPLETED" {
			revenue += o.Total
			completed++
		}
	}
	assert.Equal(t, totals.OrdersCompleted, completed)
	assert.Equal(t, totals.Revenue, revenue)
}

func TestRun_IsReproducibleForASeed(t *testing.T) {
	a, err := simulation.New(simulation.DefaultSettings(), catalog.Default())
	require.NoError(t, err)
	b, err := simulation.New(simulation.DefaultSettings(), catalog.Default())
	require.NoError(t, err)

	ra, err := a.Run(context.Background())
	require.NoError(t, err)
	rb, err := b.Run(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, ra.RunID, rb.RunID)
	assert.Equal(t, ra.Totals(), rb.Totals())
	assert.Equal(t, ra.Events, rb.Events)
}

func TestRun_StopsWhenContextIsCancelled(t *testing.T) {
	sim, err := simulation.New(quietSettings(), catalog.Default(), simulation.WithRunID("run-1"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := sim.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "run-1", result.RunID)
	assert.Empty(t, result.Days)
}

func TestParseBusinessLevel(t *testing.T) {
	level, err := simulation.ParseBusinessLevel(" med ")
	require.NoError(t, err)
	assert.Equal(t, simulation.BusinessMedium, level)

	_, err = simulation.ParseBusinessLevel("frantic")
	assert.Error(t, err)
}

func TestRun_EmptyCatalogCompletes(t *testing.T) {
	empty, err := catalog.New(nil)
	require.NoError(t, err)
	settings := quietSettings()
	settings.CustomersPerLevel = map[simulation.BusinessLevel]int{simulation.BusinessLow: 1}

	sim, err := simulation.New(settings, empty)
	require.NoError(t, err)
	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	totals := result.Totals()
	assert.Len(t, result.Days, 3)
	assert.Equal(t, 3, totals.Customers)
	assert.Zero(t, totals.OrdersCompleted+totals.OrdersFailed)
	assert.Equal(t, 3, totals.QueriesAnswered)
}
