package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

// PlantInfo describes a species the garden center stocks
type PlantInfo struct {
	Name     string
	Category string
	Care     garden.CareProfile
	Price    shared.Money
}

// Catalog is the immutable plant database, keyed by lower-case species name
type Catalog struct {
	entries    []PlantInfo
	byName     map[string]int
	categories []string
}

// New builds a catalog. Names and categories are normalised to lower case;
// duplicate names are rejected.
func New(entries []PlantInfo) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]int, len(entries))}
	for _, e := range entries {
		e.Name = normalize(e.Name)
		e.Category = normalize(e.Category)
		if e.Name == "" {
			return nil, shared.NewValidationError("name", "catalog entry has an empty name")
		}
		if e.Category == "" {
			return nil, shared.NewValidationError("category", fmt.Sprintf("%s has no category", e.Name))
		}
		if e.Price < 0 {
			return nil, shared.NewValidationError("price", fmt.Sprintf("%s has a negative price", e.Name))
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, shared.NewValidationError("name", fmt.Sprintf("duplicate catalog entry %q", e.Name))
		}
		c.byName[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
		if !slices.Contains(c.categories, e.Category) {
			c.categories = append(c.categories, e.Category)
		}
	}
	return c, nil
}

// Lookup finds a species by name, ignoring case
func (c *Catalog) Lookup(name string) (PlantInfo, bool) {
	i, ok := c.byName[normalize(name)]
	if !ok {
		return PlantInfo{}, false
	}
	return c.entries[i], true
}

// All returns every entry in catalog order
func (c *Catalog) All() []PlantInfo {
	return slices.Clone(c.entries)
}

// Names returns every species name in catalog order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Name
	}
	return out
}

// Categories returns the categories in first-seen order
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// ByCategory returns the entries of one category
func (c *Catalog) ByCategory(category string) []PlantInfo {
	category = normalize(category)
	var out []PlantInfo
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// NewPlant creates a seedling of a catalogued species
func (c *Catalog) NewPlant(name string, opts ...garden.PlantOption) (*garden.Plant, error) {
	info, ok := c.Lookup(name)
	if !ok {
		return nil, shared.NewNotFoundError("species", name)
	}
	return garden.NewPlant(info.Name, info.Category, info.Price, info.Care, opts...)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
