package supplies_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

func TestInventory_AddAndUse(t *testing.T) {
	inv := supplies.NewInventory()

	require.NoError(t, inv.AddStock(supplies.CategorySoil, supplies.BasicSoil, 5))
	require.NoError(t, inv.UseItem(supplies.CategorySoil, supplies.BasicSoil, 2))

	assert.Equal(t, 3, inv.Quantity(supplies.CategorySoil, supplies.BasicSoil))
	assert.True(t, inv.Exists(supplies.CategorySoil, supplies.BasicSoil))
	assert.False(t, inv.Exists(supplies.CategoryCard, supplies.GreetingCard))
}

func TestInventory_RejectsNegativeStock(t *testing.T) {
	inv := supplies.NewInventory()

	var verr *shared.ValidationError
	assert.ErrorAs(t, inv.AddStock(supplies.CategoryCard, supplies.GreetingCard, -1), &verr)
}

func TestInventory_UseMoreThanHeldFailsWithoutConsuming(t *testing.T) {
	inv := supplies.NewInventory()
	require.NoError(t, inv.AddStock(supplies.CategoryContainer, supplies.BasicContainer, 1))

	err := inv.UseItem(supplies.CategoryContainer, supplies.BasicContainer, 2)

	var short *supplies.ErrInsufficientSupply
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 2, short.Requested)
	assert.Equal(t, 1, short.Available)
	assert.Equal(t, 1, inv.Quantity(supplies.CategoryContainer, supplies.BasicContainer))
}

func TestInventory_UseAllIsAllOrNothing(t *testing.T) {
	inv := supplies.NewInventory()
	require.NoError(t, inv.AddStock(supplies.CategorySoil, supplies.BasicSoil, 1))
	require.NoError(t, inv.AddStock(supplies.CategoryContainer, supplies.BasicContainer, 0))

	err := inv.UseAll([]supplies.Requirement{
		{Item: supplies.Item{Category: supplies.CategorySoil, Name: supplies.BasicSoil}, Quantity: 1},
		{Item: supplies.Item{Category: supplies.CategoryContainer, Name: supplies.BasicContainer}, Quantity: 1},
	})

	assert.Error(t, err)
	assert.Equal(t, 1, inv.Quantity(supplies.CategorySoil, supplies.BasicSoil))
}

func TestInventory_CheckSumsRepeatedItems(t *testing.T) {
	inv := supplies.NewInventory()
	require.NoError(t, inv.AddStock(supplies.CategoryCard, supplies.GreetingCard, 1))
	card := supplies.Item{Category: supplies.CategoryCard, Name: supplies.GreetingCard}

	err := inv.Check([]supplies.Requirement{{Item: card, Quantity: 1}, {Item: card, Quantity: 1}})

	assert.Error(t, err)
}

func TestInventory_LevelsSorted(t *testing.T) {
	inv := supplies.NewInventory()
	require.NoError(t, inv.AddStock(supplies.CategoryWrapper, supplies.KraftWrapping, 2))
	require.NoError(t, inv.AddStock(supplies.CategoryCard, supplies.GreetingCard, 4))
	inv.SetPrice(supplies.CategoryCard, supplies.GreetingCard, shared.Dollars(3))

	levels := inv.Levels()

	require.Len(t, levels, 2)
	assert.Equal(t, supplies.CategoryCard, levels[0].Item.Category)
	assert.Equal(t, shared.Dollars(3), levels[0].Price)
	assert.Equal(t, supplies.CategoryWrapper, levels[1].Item.Category)
}
