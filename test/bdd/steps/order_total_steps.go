package steps

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/sales"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

type orderTotalContext struct {
	order *sales.Order
}

func (otc *orderTotalContext) reset() {
	otc.order = nil
}

func (otc *orderTotalContext) anEmptyOrderFor(customer string) error {
	otc.order = sales.NewOrder(customer, shared.NewMockClock(time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)))
	return nil
}

func (otc *orderTotalContext) theOrderHasThePlantLines(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}

		price, quantity, err := priceAndQuantity(table, row)
		if err != nil {
			return err
		}
		plant, err := garden.NewPlant(getCellValueFromTable(table, row, "plant"), "flowering", price, garden.CareProfile{})
		if err != nil {
			return err
		}
		if err := otc.order.AddPlant(plant, quantity); err != nil {
			return err
		}
	}
	return nil
}

func (otc *orderTotalContext) theOrderHasTheSupplyLines(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}

		price, quantity, err := priceAndQuantity(table, row)
		if err != nil {
			return err
		}
		item := supplies.Item{Category: supplies.CategoryCard, Name: getCellValueFromTable(table, row, "item")}
		if err := otc.order.AddSupply(item, price, quantity); err != nil {
			return err
		}
	}
	return nil
}

func (otc *orderTotalContext) lineIsRemovedFromTheOrder(line int) error {
	return otc.order.RemoveLine(line - 1)
}

func (otc *orderTotalContext) theOrderTotalShouldBe(expected string) error {
	if got := otc.order.CalculateTotal().String(); got != expected {
		return fmt.Errorf("expected total %s but got %s", expected, got)
	}
	return nil
}

func priceAndQuantity(table *godog.Table, row *messages.PickleTableRow) (shared.Money, int, error) {
	price, err := strconv.ParseFloat(getCellValueFromTable(table, row, "price"), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid price: %w", err)
	}
	quantity, err := strconv.Atoi(getCellValueFromTable(table, row, "quantity"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid quantity: %w", err)
	}
	return shared.Dollars(price), quantity, nil
}

// InitializeOrderTotalScenario registers the order total steps
func InitializeOrderTotalScenario(ctx *godog.ScenarioContext) {
	otc := &orderTotalContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		otc.reset()
		return ctx, nil
	})

	ctx.Step(`^an empty order for "([^"]*)"$`, otc.anEmptyOrderFor)
	ctx.Step(`^the order has the plant lines:$`, otc.theOrderHasThePlantLines)
	ctx.Step(`^the order has the supply lines:$`, otc.theOrderHasTheSupplyLines)
	ctx.Step(`^line (\d+) is removed from the order$`, otc.lineIsRemovedFromTheOrder)
	ctx.Step(`^the order total should be "([^"]*)"$`, otc.theOrderTotalShouldBe)
}
