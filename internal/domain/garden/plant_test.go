package garden_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

var lowWater = garden.CareProfile{Sunlight: garden.LevelHigh, Water: garden.LevelLow}

func newPlant(t *testing.T, name string, opts ...garden.PlantOption) *garden.Plant {
	t.Helper()
	p, err := garden.NewPlant(name, "succulent", shared.Dollars(9.99), lowWater, opts...)
	require.NoError(t, err)
	return p
}

func TestNewPlant_StartsAsFullyWateredSeedling(t *testing.T) {
	p := newPlant(t, "cactus")

	assert.Equal(t, garden.StageSeedling, p.Stage())
	assert.Equal(t, 1.0, p.WaterLevel())
	assert.Equal(t, 0, p.Age())
	assert.Equal(t, garden.LocationInside, p.Location())
	assert.NotEmpty(t, p.ID())
	assert.False(t, p.CanSell(), "seedlings are too young to sell")
}

func TestNewPlant_RejectsInvalidInput(t *testing.T) {
	_, err := garden.NewPlant("  ", "herb", 100, lowWater)
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = garden.NewPlant("basil", "herb", -1, lowWater)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)

	_, err = garden.NewPlant("basil", "herb", 100, lowWater, garden.WithWaterLevel(1.5))
	require.ErrorAs(t, err, &verr)
}

func TestPlant_MaturesOnceOldEnoughAndWatered(t *testing.T) {
	p := newPlant(t, "cactus")

	for i := 0; i < 4; i++ {
		tr := p.Advance()
		assert.False(t, tr.Changed(), "tick %d", i+1)
	}
	tr := p.Advance()

	assert.True(t, tr.Matured())
	assert.Equal(t, garden.StageMature, p.Stage())
	assert.Equal(t, "Mature", p.State().Name())
	assert.True(t, p.CanSell())
}

func TestPlant_StaysSeedlingWhenTooDry(t *testing.T) {
	p := newPlant(t, "cactus", garden.WithAge(10), garden.WithWaterLevel(0.3))

	p.Advance()

	assert.Equal(t, garden.StageSeedling, p.Stage())
}

func TestPlant_DiesOfOldAge(t *testing.T) {
	policy := garden.LifecyclePolicy{MaturityAge: 1, Lifespan: 3, MinGrowthWater: 0}
	p := newPlant(t, "cactus", garden.WithPolicy(policy), garden.WithStage(garden.StageMature), garden.WithAge(3))

	tr := p.Advance()

	assert.True(t, tr.Died())
	assert.True(t, p.IsDead())
	assert.False(t, p.CanSell())
}

func TestPlant_DiesOfDehydrationFromAnyLivingStage(t *testing.T) {
	thirsty := garden.CareProfile{Sunlight: garden.LevelLow, Water: garden.LevelHigh}
	seedling, err := garden.NewPlant("peace lily", "tropical", 1500, thirsty, garden.WithWaterLevel(0.3))
	require.NoError(t, err)

	tr := seedling.Advance()

	assert.Equal(t, garden.Transition{From: garden.StageSeedling, To: garden.StageDead}, tr)
	assert.Equal(t, 0.0, seedling.WaterLevel())
}

func TestPlant_OverwateringKills(t *testing.T) {
	p := newPlant(t, "cactus", garden.WithWaterLevel(0.8))

	p.Water(0.5)

	assert.True(t, p.IsDead())
}

func TestPlant_TopUpOnlyBelowThreshold(t *testing.T) {
	dry := newPlant(t, "cactus", garden.WithWaterLevel(0.2))
	wet := newPlant(t, "aloe vera", garden.WithWaterLevel(0.9))

	assert.Equal(t, 1, dry.TopUp(0.5))
	assert.Equal(t, 0, wet.TopUp(0.5))
	assert.Equal(t, 1.0, dry.WaterLevel())
	assert.False(t, dry.IsDead())
}

func TestPlant_DeadIsTerminal(t *testing.T) {
	p := newPlant(t, "cactus", garden.WithStage(garden.StageDead))
	age := p.Age()

	for i := 0; i < 3; i++ {
		tr := p.Advance()
		assert.False(t, tr.Changed())
	}
	p.Water(0.5)
	p.MoveTo(garden.LocationOutside)

	assert.Equal(t, garden.StageDead, p.Stage())
	assert.Equal(t, age, p.Age())
	assert.Equal(t, garden.LocationInside, p.Location())
}

func TestPlant_StageNeverDecreases(t *testing.T) {
	thirsty := garden.CareProfile{Sunlight: garden.LevelMedium, Water: garden.LevelMedium}
	p, err := garden.NewPlant("monstera", "tropical", 2500, thirsty)
	require.NoError(t, err)

	prev := p.Stage()
	for i := 0; i < 80; i++ {
		if i%3 == 0 {
			p.TopUp(0.5)
		}
		p.Advance()
		require.GreaterOrEqual(t, p.Stage(), prev)
		prev = p.Stage()
	}
	assert.Equal(t, garden.StageDead, p.Stage())
}

func TestPlant_StructuralOperationsUnsupported(t *testing.T) {
	p := newPlant(t, "cactus")
	other := newPlant(t, "jade plant")

	err := p.Add(other)
	var unsupported *garden.ErrUnsupportedOperation
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "add", unsupported.Operation)

	err = p.Remove(other)
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "remove", unsupported.Operation)
}

func TestPlant_MarkSold(t *testing.T) {
	seedling := newPlant(t, "cactus")
	mature := newPlant(t, "aloe vera", garden.WithStage(garden.StageMature))

	assert.Error(t, seedling.MarkSold())

	require.NoError(t, mature.MarkSold())
	assert.False(t, mature.CanSell())

	var sold *garden.ErrAlreadySold
	assert.ErrorAs(t, mature.MarkSold(), &sold)
}

func TestPlant_ExposeToSunlightFollowsCareProfile(t *testing.T) {
	shade := garden.CareProfile{Sunlight: garden.LevelLow, Water: garden.LevelMedium}
	p, err := garden.NewPlant("pothos", "tropical", 1200, shade)
	require.NoError(t, err)

	p.MoveTo(garden.LocationOutside)
	p.ExposeToSunlight()

	assert.Equal(t, garden.LocationInside, p.Location())
}
