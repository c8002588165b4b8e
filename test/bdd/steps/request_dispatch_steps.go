package steps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/greenhouse"
	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/staff"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

type requestDispatchContext struct {
	workspace *staff.Workspace
	roster    *staff.Roster
	outcome   staff.Outcome
	err       error
}

func (rdc *requestDispatchContext) reset() {
	rdc.workspace = nil
	rdc.roster = nil
	rdc.outcome = staff.Outcome{}
	rdc.err = nil
}

func (rdc *requestDispatchContext) aShopWithMaturePlants(count int, species string) error {
	cat := catalog.Default()
	manager, err := greenhouse.NewManager("Greenhouse")
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		p, err := cat.NewPlant(species, garden.WithStage(garden.StageMature))
		if err != nil {
			return err
		}
		if err := manager.AddPlant(p); err != nil {
			return err
		}
	}

	inventory := supplies.NewInventory()
	for _, s := range simulation.DefaultSupplies() {
		if err := inventory.AddStock(s.Category, s.Name, s.Quantity); err != nil {
			return err
		}
		inventory.SetPrice(s.Category, s.Name, s.Price)
	}

	rdc.workspace = &staff.Workspace{
		Greenhouse:     manager,
		Supplies:       inventory,
		Catalog:        cat,
		Clock:          shared.NewMockClock(time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)),
		WaterThreshold: 0.5,
		Policy:         garden.DefaultLifecyclePolicy(),
	}
	return nil
}

func (rdc *requestDispatchContext) hire(table *godog.Table, capacity int) error {
	rdc.roster = staff.NewRoster()
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}

		role, err := staff.ParseRole(getCellValueFromTable(table, row, "role"))
		if err != nil {
			return err
		}
		count, err := strconv.Atoi(getCellValueFromTable(table, row, "count"))
		if err != nil {
			return err
		}
		factory, err := staff.FactoryFor(role, capacity)
		if err != nil {
			return err
		}
		for n := 0; n < count; n++ {
			rdc.roster.Hire(factory.CreateEmployee())
		}
	}
	rdc.roster.StartShift()
	return nil
}

func (rdc *requestDispatchContext) theStaff(table *godog.Table) error {
	return rdc.hire(table, 0)
}

func (rdc *requestDispatchContext) theStaffWithCapacity(capacity int, table *godog.Table) error {
	return rdc.hire(table, capacity)
}

func (rdc *requestDispatchContext) dispatch(req request.Request) error {
	rdc.outcome, rdc.err = rdc.roster.Dispatch(req, rdc.workspace)
	return nil
}

func (rdc *requestDispatchContext) customerOrders(customer string, quantity int, species string) error {
	return rdc.dispatch(&request.Order{Customer: customer, Lines: []request.Line{{Species: species, Quantity: quantity}}})
}

func (rdc *requestDispatchContext) customerAsksAbout(customer, species string) error {
	return rdc.dispatch(&request.Query{Customer: customer, Species: species})
}

func (rdc *requestDispatchContext) customerComplains(customer, message string) error {
	return rdc.dispatch(&request.Complaint{Customer: customer, Message: message})
}

func (rdc *requestDispatchContext) theRequestShouldBeHandledBy(employee string) error {
	if rdc.err != nil {
		return fmt.Errorf("expected the request to be handled but got %v", rdc.err)
	}
	if rdc.outcome.Employee != employee {
		return fmt.Errorf("expected %s to handle the request but got %s", employee, rdc.outcome.Employee)
	}
	return nil
}

func (rdc *requestDispatchContext) theRequestShouldBeUnhandled() error {
	var unhandled *staff.ErrUnhandledRequest
	if !errors.As(rdc.err, &unhandled) {
		return fmt.Errorf("expected an unhandled request error but got %v", rdc.err)
	}
	return nil
}

func (rdc *requestDispatchContext) theRequestShouldFail() error {
	if rdc.err != nil {
		return fmt.Errorf("expected the request to be handled, got %v", rdc.err)
	}
	if rdc.outcome.Err == nil {
		return fmt.Errorf("expected the handling to fail")
	}
	return nil
}

func (rdc *requestDispatchContext) theOrderShouldBe(status string) error {
	if rdc.outcome.Order == nil {
		return fmt.Errorf("no order was created")
	}
	if got := string(rdc.outcome.Order.Status()); got != status {
		return fmt.Errorf("expected order %s but got %s", status, got)
	}
	return nil
}

func (rdc *requestDispatchContext) theShopShouldHaveLeft(count int, species string) error {
	if got := rdc.workspace.Greenhouse.Available(species); got != count {
		return fmt.Errorf("expected %d %s left but got %d", count, species, got)
	}
	return nil
}

// InitializeRequestDispatchScenario registers the staff dispatch steps
func InitializeRequestDispatchScenario(ctx *godog.ScenarioContext) {
	rdc := &requestDispatchContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		rdc.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^a shop with (\d+) mature "([^"]*)" plants and default supplies$`, rdc.aShopWithMaturePlants)
	ctx.Step(`^the staff:$`, rdc.theStaff)
	ctx.Step(`^the staff with a daily capacity of (\d+):$`, rdc.theStaffWithCapacity)

	// When
	ctx.Step(`^"([^"]*)" orders (\d+) "([^"]*)"$`, rdc.customerOrders)
	ctx.Step(`^"([^"]*)" asks about "([^"]*)"$`, rdc.customerAsksAbout)
	ctx.Step(`^"([^"]*)" complains "([^"]*)"$`, rdc.customerComplains)

	// Then
	ctx.Step(`^the request should be handled by "([^"]*)"$`, rdc.theRequestShouldBeHandledBy)
	ctx.Step(`^the request should be unhandled$`, rdc.theRequestShouldBeUnhandled)
	ctx.Step(`^the request should fail$`, rdc.theRequestShouldFail)
	ctx.Step(`^the order should be "([^"]*)"$`, rdc.theOrderShouldBe)
	ctx.Step(`^the shop should have (\d+) "([^"]*)" left$`, rdc.theShopShouldHaveLeft)
}
