package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/domain/staff"
	"github.com/andrescamacho/greenhouse-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	// Arrange
	path := writeConfig(t, `
simulation:
  days: 3
  seed: 7
  business_levels: [low, high]
  staffing:
    cashier: 1
    manager: 1
  plant_selection:
    rose: 2
database:
  type: sqlite
  path: ":memory:"
`)

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Simulation.Days)
	assert.Equal(t, uint64(7), cfg.Simulation.Seed)
	assert.Equal(t, 0.6, cfg.Simulation.OrderProbability)
	assert.Equal(t, map[string]int{"rose": 2}, cfg.Simulation.PlantSelection)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)

	settings, err := cfg.Simulation.Settings()
	require.NoError(t, err)
	assert.Equal(t, map[staff.Role]int{staff.RoleCashier: 1, staff.RoleManager: 1}, settings.Staffing)
	require.Len(t, settings.BusinessLevels, 2)
	assert.Equal(t, "HIGH", string(settings.BusinessLevels[1]))
	assert.Len(t, settings.Supplies, 5)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "simulation:\n  days: 3\n")
	t.Setenv("GH_SIMULATION_DAYS", "12")
	t.Setenv("GH_LOGGING_LEVEL", "debug")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Simulation.Days)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"probability":  "simulation:\n  order_probability: 1.5\n",
		"role":         "simulation:\n  staffing:\n    janitor: 1\n",
		"level":        "simulation:\n  business_levels: [frantic]\n",
		"logging":      "logging:\n  level: loud\n",
		"database":     "database:\n  type: oracle\n",
		"supply":       "simulation:\n  supplies:\n    - {category: GLITTER, name: Sparkle, quantity: 1, price: 1}\n",
		"opening_date": "simulation:\n  opening_date: yesterday\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigOrDefault_FallsBackOnError(t *testing.T) {
	cfg := config.LoadConfigOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NotNil(t, cfg)
	assert.Equal(t, 7, cfg.Simulation.Days)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.NoError(t, config.ValidateConfig(cfg))
}

func TestDefaultConfig_RoundTripsToDefaultSettings(t *testing.T) {
	cfg := config.DefaultConfig()

	settings, err := cfg.Simulation.Settings()

	require.NoError(t, err)
	assert.Equal(t, 7, settings.Days)
	assert.Equal(t, 2, settings.Staffing[staff.RoleCashier])
	assert.Equal(t, 26, sum(settings.PlantSelection))
}

func sum(m map[string]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}
