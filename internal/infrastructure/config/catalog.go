package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

// CatalogConfig points at an optional plant catalog file
type CatalogConfig struct {
	// YAML file replacing the built-in plant database. Empty uses the default.
	File string `mapstructure:"file" validate:"omitempty,file"`
}

// CatalogFile is the on-disk layout of a plant catalog
type CatalogFile struct {
	Plants []CatalogEntry `yaml:"plants"`
}

// CatalogEntry is one species in a catalog file
type CatalogEntry struct {
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Sunlight string  `yaml:"sunlight"`
	Water    string  `yaml:"water"`
	Price    float64 `yaml:"price"`
}

// LoadCatalog returns the catalog named by the config, or the built-in one
func LoadCatalog(cfg CatalogConfig) (*catalog.Catalog, error) {
	if cfg.File == "" {
		return catalog.Default(), nil
	}
	return LoadCatalogFile(cfg.File)
}

// LoadCatalogFile reads a plant catalog from a YAML file
func LoadCatalogFile(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML plant catalog
func ParseCatalog(data []byte) (*catalog.Catalog, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(file.Plants) == 0 {
		return nil, shared.NewValidationError("plants", "catalog file lists no plants")
	}

	entries := make([]catalog.PlantInfo, 0, len(file.Plants))
	for i, p := range file.Plants {
		sunlight, err := garden.ParseLevel(p.Sunlight)
		if err != nil {
			return nil, fmt.Errorf("plant %d (%s): sunlight: %w", i, p.Name, err)
		}
		water, err := garden.ParseLevel(p.Water)
		if err != nil {
			return nil, fmt.Errorf("plant %d (%s): water: %w", i, p.Name, err)
		}
		entries = append(entries, catalog.PlantInfo{
			Name:     p.Name,
			Category: p.Category,
			Care:     garden.CareProfile{Sunlight: sunlight, Water: water},
			Price:    shared.Dollars(p.Price),
		})
	}
	return catalog.New(entries)
}

// MarshalCatalog renders a catalog in the file layout ParseCatalog reads
func MarshalCatalog(cat *catalog.Catalog) ([]byte, error) {
	file := CatalogFile{}
	for _, p := range cat.All() {
		file.Plants = append(file.Plants, CatalogEntry{
			Name:     p.Name,
			Category: p.Category,
			Sunlight: p.Care.Sunlight.String(),
			Water:    p.Care.Water.String(),
			Price:    p.Price.Float(),
		})
	}
	return yaml.Marshal(file)
}
