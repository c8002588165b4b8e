package greenhouse

import (
	"sort"

	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
)

// Census counts the plants in the tree by stage and species
type Census struct {
	Total     int
	Seedling  int
	Mature    int
	Dead      int
	BySpecies map[string]SpeciesCount
}

// SpeciesCount is the per-species breakdown of a census
type SpeciesCount struct {
	Name     string
	Total    int
	Living   int
	Sellable int
}

// Census walks the tree and counts plants
func (m *Manager) Census() Census {
	c := Census{BySpecies: make(map[string]SpeciesCount)}
	for p := range garden.Plants(m.root) {
		c.Total++
		switch p.Stage() {
		case garden.StageSeedling:
			c.Seedling++
		case garden.StageMature:
			c.Mature++
		case garden.StageDead:
			c.Dead++
		}
		sc := c.BySpecies[p.Name()]
		sc.Name = p.Name()
		sc.Total++
		if !p.IsDead() {
			sc.Living++
		}
		if p.CanSell() {
			sc.Sellable++
		}
		c.BySpecies[p.Name()] = sc
	}
	return c
}

// Living returns how many plants of a species are not dead
func (c Census) Living(name string) int {
	return c.BySpecies[name].Living
}

// Species returns the per-species counts sorted by name
func (c Census) Species() []SpeciesCount {
	out := make([]SpeciesCount, 0, len(c.BySpecies))
	for _, sc := range c.BySpecies {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
