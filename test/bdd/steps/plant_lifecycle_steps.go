package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
)

type plantLifecycleContext struct {
	catalog *catalog.Catalog
	policy  garden.LifecyclePolicy
	plant   *garden.Plant
}

func (plc *plantLifecycleContext) reset() {
	plc.catalog = catalog.Default()
	plc.policy = garden.DefaultLifecyclePolicy()
	plc.plant = nil
}

func (plc *plantLifecycleContext) aLifecyclePolicy(maturity, lifespan int, minWater float64) error {
	plc.policy = garden.LifecyclePolicy{MaturityAge: maturity, Lifespan: lifespan, MinGrowthWater: minWater}
	return plc.policy.Validate()
}

func (plc *plantLifecycleContext) aSeedling(species string) error {
	p, err := plc.catalog.NewPlant(species, garden.WithPolicy(plc.policy))
	plc.plant = p
	return err
}

func (plc *plantLifecycleContext) aSeedlingWithWaterLevel(species string, level float64) error {
	p, err := plc.catalog.NewPlant(species, garden.WithPolicy(plc.policy), garden.WithWaterLevel(level))
	plc.plant = p
	return err
}

func (plc *plantLifecycleContext) thePlantAges(times int) error {
	for i := 0; i < times; i++ {
		plc.plant.Advance()
	}
	return nil
}

func (plc *plantLifecycleContext) thePlantIsWateredBy(amount float64) error {
	plc.plant.Water(amount)
	return nil
}

func (plc *plantLifecycleContext) thePlantShouldBe(stage string) error {
	if got := plc.plant.Stage().String(); got != stage {
		return fmt.Errorf("expected stage %s but got %s", stage, got)
	}
	return nil
}

func (plc *plantLifecycleContext) thePlantShouldBeSellable() error {
	if !plc.plant.CanSell() {
		return fmt.Errorf("expected %s to be sellable", plc.plant)
	}
	return nil
}

func (plc *plantLifecycleContext) thePlantShouldNotBeSellable() error {
	if plc.plant.CanSell() {
		return fmt.Errorf("expected %s not to be sellable", plc.plant)
	}
	return nil
}

func (plc *plantLifecycleContext) thePlantAgeShouldBe(age int) error {
	if plc.plant.Age() != age {
		return fmt.Errorf("expected age %d but got %d", age, plc.plant.Age())
	}
	return nil
}

// InitializePlantLifecycleScenario registers the plant state machine steps
func InitializePlantLifecycleScenario(ctx *godog.ScenarioContext) {
	plc := &plantLifecycleContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		plc.reset()
		return ctx, nil
	})

	ctx.Step(`^a lifecycle policy maturing at age (\d+) with lifespan (\d+) and minimum growth water ([\d.]+)$`, plc.aLifecyclePolicy)
	ctx.Step(`^a "([^"]*)" seedling$`, plc.aSeedling)
	ctx.Step(`^a "([^"]*)" seedling with water level ([\d.]+)$`, plc.aSeedlingWithWaterLevel)

	ctx.Step(`^the plant ages (\d+) times$`, plc.thePlantAges)
	ctx.Step(`^the plant is watered by ([\d.]+)$`, plc.thePlantIsWateredBy)

	ctx.Step(`^the plant should be "([^"]*)"$`, plc.thePlantShouldBe)
	ctx.Step(`^the plant should be sellable$`, plc.thePlantShouldBeSellable)
	ctx.Step(`^the plant should not be sellable$`, plc.thePlantShouldNotBeSellable)
	ctx.Step(`^the plant age should be (\d+)$`, plc.thePlantAgeShouldBe)
}
