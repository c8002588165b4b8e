package catalog

import (
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

const (
	low    = garden.LevelLow
	medium = garden.LevelMedium
	high   = garden.LevelHigh
)

func entry(name, category string, sun, water garden.Level, dollars float64) PlantInfo {
	return PlantInfo{
		Name:     name,
		Category: category,
		Care:     garden.CareProfile{Sunlight: sun, Water: water},
		Price:    shared.Dollars(dollars),
	}
}

// DefaultEntries is the house plant database: twenty species in four categories
func DefaultEntries() []PlantInfo {
	return []PlantInfo{
		entry("cactus", "succulent", high, low, 8.50),
		entry("aloe vera", "succulent", high, low, 9.00),
		entry("jade plant", "succulent", high, low, 12.00),
		entry("haworthia", "succulent", medium, low, 7.50),
		entry("echeveria", "succulent", high, low, 6.50),

		entry("monstera", "tropical", medium, medium, 35.00),
		entry("philodendron", "tropical", medium, medium, 22.00),
		entry("pothos", "tropical", low, medium, 15.00),
		entry("bird of paradise", "tropical", high, medium, 48.00),
		entry("peace lily", "tropical", low, high, 19.50),

		entry("basil", "herb", high, high, 4.50),
		entry("mint", "herb", medium, high, 4.00),
		entry("rosemary", "herb", high, low, 5.50),
		entry("thyme", "herb", high, low, 5.00),
		entry("oregano", "herb", high, low, 5.00),

		entry("rose", "flowering", high, medium, 18.00),
		entry("lavender", "flowering", high, low, 14.00),
		entry("orchid", "flowering", low, medium, 29.00),
		entry("sunflower", "flowering", high, high, 7.00),
		entry("hydrangea", "flowering", low, high, 26.00),
	}
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return c
}
