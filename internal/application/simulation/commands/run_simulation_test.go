package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/application/common"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/application/simulation/commands"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

type memoryRuns struct {
	saved []*simulation.RunRecord
	err   error
}

func (m *memoryRuns) Save(ctx context.Context, run *simulation.RunRecord) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, run)
	return nil
}

func (m *memoryRuns) FindByID(ctx context.Context, id string) (*simulation.RunRecord, error) {
	return nil, errors.New("not implemented")
}

func (m *memoryRuns) ListRecent(ctx context.Context, limit int) ([]*simulation.RunRecord, error) {
	return m.saved, nil
}

func shortRun() simulation.Settings {
	s := simulation.DefaultSettings()
	s.Days = 2
	return s
}

func TestRunSimulation_PersistsRunThroughMediator(t *testing.T) {
	// Arrange
	runs := &memoryRuns{}
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*commands.RunSimulationCommand](m,
		commands.NewRunSimulationHandler(catalog.Default(), runs, nil, clock)))

	// Act
	resp, err := m.Send(context.Background(), &commands.RunSimulationCommand{Settings: shortRun(), Persist: true})

	// Assert
	require.NoError(t, err)
	result := resp.(*commands.RunSimulationResponse)
	assert.True(t, result.Saved)
	require.Len(t, runs.saved, 1)
	assert.Equal(t, result.Result.RunID, runs.saved[0].ID)
	assert.Equal(t, "Greenhouse", runs.saved[0].GreenhouseName)
	assert.Len(t, runs.saved[0].Days, 2)
	assert.Equal(t, clock.Now(), runs.saved[0].StartedAt)
	assert.NotNil(t, result.Greenhouse)
	assert.NotEmpty(t, result.Supplies)
}

func TestRunSimulation_WithoutPersistSkipsRepository(t *testing.T) {
	runs := &memoryRuns{}
	h := commands.NewRunSimulationHandler(catalog.Default(), runs, nil, nil)

	resp, err := h.Handle(context.Background(), &commands.RunSimulationCommand{Settings: shortRun()})

	require.NoError(t, err)
	assert.False(t, resp.(*commands.RunSimulationResponse).Saved)
	assert.Empty(t, runs.saved)
}

func TestRunSimulation_Errors(t *testing.T) {
	h := commands.NewRunSimulationHandler(catalog.Default(), &memoryRuns{err: errors.New("disk full")}, nil, nil)

	_, err := h.Handle(context.Background(), &commands.RunSimulationCommand{Settings: shortRun(), Persist: true})
	assert.ErrorContains(t, err, "disk full")

	bad := shortRun()
	bad.Days = 0
	_, err = h.Handle(context.Background(), &commands.RunSimulationCommand{Settings: bad})
	var ve *shared.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = h.Handle(context.Background(), "wrong")
	assert.Error(t, err)
}
