package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/infrastructure/config"
)

const smallCatalog = `
plants:
  - name: Venus Flytrap
    category: carnivorous
    sunlight: high
    water: high
    price: 12.5
  - name: Snake Plant
    category: tropical
    sunlight: low
    water: low
    price: 20
`

func TestParseCatalog(t *testing.T) {
	cat, err := config.ParseCatalog([]byte(smallCatalog))

	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
	info, ok := cat.Lookup("venus flytrap")
	require.True(t, ok)
	assert.Equal(t, "carnivorous", info.Category)
	assert.Equal(t, garden.LevelHigh, info.Care.Water)
	assert.Equal(t, shared.Money(1250), info.Price)
}

func TestParseCatalog_Errors(t *testing.T) {
	_, err := config.ParseCatalog([]byte("plants: []"))
	assert.Error(t, err)

	_, err = config.ParseCatalog([]byte("plants:\n  - {name: x, category: y, sunlight: blazing, water: low}\n"))
	assert.Error(t, err)

	_, err = config.ParseCatalog([]byte("plants: [oops"))
	assert.Error(t, err)
}

func TestLoadCatalog_DefaultAndFile(t *testing.T) {
	def, err := config.LoadCatalog(config.CatalogConfig{})
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Len(), def.Len())

	path := filepath.Join(t.TempDir(), "plants.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0o600))
	fromFile, err := config.LoadCatalog(config.CatalogConfig{File: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"venus flytrap", "snake plant"}, fromFile.Names())
}

func TestMarshalCatalog_ReadsBack(t *testing.T) {
	data, err := config.MarshalCatalog(catalog.Default())
	require.NoError(t, err)

	again, err := config.ParseCatalog(data)

	require.NoError(t, err)
	assert.Equal(t, catalog.Default().All(), again.All())
}
