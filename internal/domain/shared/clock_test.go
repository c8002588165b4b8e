package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

func TestSimulationClock_TicksOneDayAtATime(t *testing.T) {
	opening := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	clock := shared.NewSimulationClock(opening, 0)

	assert.Equal(t, 0, clock.Day())
	assert.Equal(t, opening, clock.Now())

	assert.Equal(t, 1, clock.Tick())
	assert.Equal(t, opening, clock.Now())

	assert.Equal(t, 2, clock.Tick())
	assert.Equal(t, opening.Add(24*time.Hour), clock.Now())
}

func TestMockClock_Advance(t *testing.T) {
	clock := shared.NewMockClock(time.Time{})
	start := clock.Now()

	clock.Advance(90 * time.Minute)

	assert.Equal(t, time.Unix(0, 0).UTC(), start)
	assert.Equal(t, start.Add(90*time.Minute), clock.Now())
}

func TestMoney(t *testing.T) {
	price := shared.Dollars(19.99)

	assert.Equal(t, shared.Money(1999), price)
	assert.Equal(t, "$59.97", price.Times(3).String())
	assert.InDelta(t, 19.99, price.Float(), 1e-9)
	assert.Equal(t, "$0.00", shared.Money(0).String())
}
