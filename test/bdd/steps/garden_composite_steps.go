package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/greenhouse"
)

type gardenCompositeContext struct {
	catalog *catalog.Catalog
	manager *greenhouse.Manager
	visited []string
	cleared int
	err     error
}

func (gcc *gardenCompositeContext) reset() {
	gcc.catalog = catalog.Default()
	gcc.manager = nil
	gcc.visited = nil
	gcc.cleared = 0
	gcc.err = nil
}

func (gcc *gardenCompositeContext) aGreenhouseNamed(name string) error {
	var err error
	gcc.manager, err = greenhouse.NewManager(name)
	return err
}

func (gcc *gardenCompositeContext) theFollowingPlants(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}

		species := getCellValueFromTable(table, row, "plant")
		section := getCellValueFromTable(table, row, "section")

		var opts []garden.PlantOption
		if s := getCellValueFromTable(table, row, "stage"); s != "" {
			stage, err := garden.ParseStage(s)
			if err != nil {
				return err
			}
			opts = append(opts, garden.WithStage(stage))
		}

		plant, err := gcc.catalog.NewPlant(species, opts...)
		if err != nil {
			return err
		}
		if _, err := gcc.manager.AddSection(section, ""); err != nil {
			return err
		}
		if err := gcc.manager.AddPlantTo(section, plant); err != nil {
			return err
		}
	}
	return nil
}

func (gcc *gardenCompositeContext) component(name string) (garden.GardenComponent, error) {
	if section, ok := gcc.manager.Section(name); ok {
		return section, nil
	}
	if plant := gcc.manager.Find(name); plant != nil {
		return plant, nil
	}
	return nil, fmt.Errorf("no component named %q", name)
}

func (gcc *gardenCompositeContext) iIterateOverThePlantsOf(name string) error {
	root, err := gcc.component(name)
	if err != nil {
		return err
	}
	it := root.CreateIterator()
	for it.HasNext() {
		c, _ := it.Next()
		gcc.visited = append(gcc.visited, c.Name())
	}
	return nil
}

func (gcc *gardenCompositeContext) iIterateOverEveryComponentOf(name string) error {
	root, err := gcc.component(name)
	if err != nil {
		return err
	}
	for c := range garden.NewIterator(root, garden.ModeAll).All() {
		gcc.visited = append(gcc.visited, c.Name())
	}
	return nil
}

func (gcc *gardenCompositeContext) iAddAPlantToThePlant(species, target string) error {
	plant, err := gcc.catalog.NewPlant(species)
	if err != nil {
		return err
	}
	leaf, err := gcc.component(target)
	if err != nil {
		return err
	}
	gcc.err = leaf.Add(plant)
	return nil
}

func (gcc *gardenCompositeContext) allDeadPlantsAreCleared() error {
	gcc.cleared = gcc.manager.ClearAllDead()
	return nil
}

func (gcc *gardenCompositeContext) theGreenhouseShouldHaveSections(list string) error {
	expected := strings.Join(splitNames(list), ", ")
	got := strings.Join(gcc.manager.SectionNames(), ", ")
	if got != expected {
		return fmt.Errorf("expected sections %q but got %q", expected, got)
	}
	return nil
}

func (gcc *gardenCompositeContext) sectionShouldHoldPlants(name string, count int) error {
	section, ok := gcc.manager.Section(name)
	if !ok {
		return fmt.Errorf("section %q not found", name)
	}
	n := 0
	for range garden.Plants(section) {
		n++
	}
	if n != count {
		return fmt.Errorf("expected %d plants in %s but got %d", count, name, n)
	}
	return nil
}

func (gcc *gardenCompositeContext) theComponentsShouldBeVisitedInOrder(list string) error {
	expected := strings.Join(splitNames(list), ", ")
	got := strings.Join(gcc.visited, ", ")
	if got != expected {
		return fmt.Errorf("expected visit order %q but got %q", expected, got)
	}
	return nil
}

func (gcc *gardenCompositeContext) theOperationShouldFailAsUnsupported() error {
	var unsupported *garden.ErrUnsupportedOperation
	if !errors.As(gcc.err, &unsupported) {
		return fmt.Errorf("expected an unsupported operation error but got %v", gcc.err)
	}
	return nil
}

func (gcc *gardenCompositeContext) sectionSellable(name, not string) error {
	section, ok := gcc.manager.Section(name)
	if !ok {
		return fmt.Errorf("section %q not found", name)
	}
	want := not == ""
	if section.CanSell() != want {
		return fmt.Errorf("expected section %s sellable=%s", name, strconv.FormatBool(want))
	}
	return nil
}

func (gcc *gardenCompositeContext) plantsShouldHaveBeenCleared(count int) error {
	if gcc.cleared != count {
		return fmt.Errorf("expected %d plants cleared but got %d", count, gcc.cleared)
	}
	return nil
}

// InitializeGardenCompositeScenario registers the greenhouse tree steps
func InitializeGardenCompositeScenario(ctx *godog.ScenarioContext) {
	gcc := &gardenCompositeContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		gcc.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^a greenhouse named "([^"]*)"$`, gcc.aGreenhouseNamed)
	ctx.Step(`^the following plants:$`, gcc.theFollowingPlants)

	// When
	ctx.Step(`^I iterate over the plants of "([^"]*)"$`, gcc.iIterateOverThePlantsOf)
	ctx.Step(`^I iterate over every component of "([^"]*)"$`, gcc.iIterateOverEveryComponentOf)
	ctx.Step(`^I add a "([^"]*)" plant to the plant "([^"]*)"$`, gcc.iAddAPlantToThePlant)
	ctx.Step(`^all dead plants are cleared$`, gcc.allDeadPlantsAreCleared)

	// Then
	ctx.Step(`^the greenhouse should have sections "([^"]*)"$`, gcc.theGreenhouseShouldHaveSections)
	ctx.Step(`^section "([^"]*)" should hold (\d+) plants$`, gcc.sectionShouldHoldPlants)
	ctx.Step(`^the components should be visited in order "([^"]*)"$`, gcc.theComponentsShouldBeVisitedInOrder)
	ctx.Step(`^the operation should fail as unsupported$`, gcc.theOperationShouldFailAsUnsupported)
	ctx.Step(`^section "([^"]*)" should (not )?be sellable$`, gcc.sectionSellable)
	ctx.Step(`^(\d+) plants should have been cleared$`, gcc.plantsShouldHaveBeenCleared)
}
