package steps

import (
	"context"
	"fmt"
	"reflect"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/staff"
)

type simulationContext struct {
	settings simulation.Settings
	results  []*simulation.RunResult
}

func (sc *simulationContext) reset() {
	sc.settings = simulation.DefaultSettings()
	sc.results = nil
}

func (sc *simulationContext) aSimulationWithSeedOverDays(seed, days int) error {
	sc.settings.Seed = uint64(seed)
	sc.settings.Days = days
	return nil
}

func (sc *simulationContext) noStaffOnTheRoster() error {
	sc.settings.Staffing = map[staff.Role]int{}
	return nil
}

func (sc *simulationContext) theBusinessLevels(list string) error {
	sc.settings.BusinessLevels = nil
	for _, name := range splitNames(list) {
		level, err := simulation.ParseBusinessLevel(name)
		if err != nil {
			return err
		}
		sc.settings.BusinessLevels = append(sc.settings.BusinessLevels, level)
	}
	return nil
}

func (sc *simulationContext) run() error {
	sim, err := simulation.New(sc.settings, catalog.Default())
	if err != nil {
		return err
	}
	result, err := sim.Run(context.Background())
	if err != nil {
		return err
	}
	sc.results = append(sc.results, result)
	return nil
}

func (sc *simulationContext) theSimulationRuns() error {
	return sc.run()
}

func (sc *simulationContext) theSimulationRunsTwice() error {
	if err := sc.run(); err != nil {
		return err
	}
	return sc.run()
}

func (sc *simulationContext) last() (*simulation.RunResult, error) {
	if len(sc.results) == 0 {
		return nil, fmt.Errorf("the simulation has not run")
	}
	return sc.results[len(sc.results)-1], nil
}

func (sc *simulationContext) theRunShouldHaveDaySummaries(count int) error {
	result, err := sc.last()
	if err != nil {
		return err
	}
	if len(result.Days) != count {
		return fmt.Errorf("expected %d day summaries but got %d", count, len(result.Days))
	}
	return nil
}

func (sc *simulationContext) noRequestShouldHaveBeenHandled() error {
	result, err := sc.last()
	if err != nil {
		return err
	}
	t := result.Totals()
	handled := t.OrdersCompleted + t.OrdersFailed + t.QueriesAnswered + t.Complaints +
		t.Escalations + t.MaintenanceTasks + t.PlantsPlanted
	if handled != 0 {
		return fmt.Errorf("expected no handled requests but got %d", handled)
	}
	return nil
}

func (sc *simulationContext) atLeastAsManyUnhandledAsCustomers() error {
	result, err := sc.last()
	if err != nil {
		return err
	}
	t := result.Totals()
	if t.Customers == 0 {
		return fmt.Errorf("expected customers to visit")
	}
	if t.Unhandled < t.Customers {
		return fmt.Errorf("expected at least %d unhandled requests but got %d", t.Customers, t.Unhandled)
	}
	return nil
}

func (sc *simulationContext) bothRunsShouldReportTheSameTotals() error {
	if len(sc.results) != 2 {
		return fmt.Errorf("expected 2 runs but got %d", len(sc.results))
	}
	first, second := sc.results[0].Totals(), sc.results[1].Totals()
	if !reflect.DeepEqual(first, second) {
		return fmt.Errorf("runs differ:\n%+v\n%+v", first, second)
	}
	return nil
}

func (sc *simulationContext) dayShouldBeWithCustomers(day int, level string, customers int) error {
	result, err := sc.last()
	if err != nil {
		return err
	}
	if day < 1 || day > len(result.Days) {
		return fmt.Errorf("day %d is out of range", day)
	}
	summary := result.Days[day-1]
	if string(summary.BusinessLevel) != level {
		return fmt.Errorf("expected day %d to be %s but got %s", day, level, summary.BusinessLevel)
	}
	if summary.Customers != customers {
		return fmt.Errorf("expected %d customers on day %d but got %d", customers, day, summary.Customers)
	}
	return nil
}

// InitializeSimulationScenario registers the simulation run steps
func InitializeSimulationScenario(ctx *godog.ScenarioContext) {
	sc := &simulationContext{}

	ctx.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		sc.reset()
		return ctx, nil
	})

	ctx.Step(`^a simulation with seed (\d+) over (\d+) days$`, sc.aSimulationWithSeedOverDays)
	ctx.Step(`^no staff on the roster$`, sc.noStaffOnTheRoster)
	ctx.Step(`^the business levels "([^"]*)"$`, sc.theBusinessLevels)
	ctx.Step(`^the simulation runs$`, sc.theSimulationRuns)
	ctx.Step(`^the simulation runs twice$`, sc.theSimulationRunsTwice)
	ctx.Step(`^the run should have (\d+) day summaries$`, sc.theRunShouldHaveDaySummaries)
	ctx.Step(`^no request should have been handled$`, sc.noRequestShouldHaveBeenHandled)
	ctx.Step(`^at least as many requests as customers should be unhandled$`, sc.atLeastAsManyUnhandledAsCustomers)
	ctx.Step(`^both runs should report the same totals$`, sc.bothRunsShouldReportTheSameTotals)
	ctx.Step(`^day (\d+) should be "([^"]*)" with (\d+) customers$`, sc.dayShouldBeWithCustomers)
}
