package customer

import (
	"fmt"

	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
	"github.com/andrescamacho/greenhouse-go/internal/domain/sales"
)

// Rand is the subset of *rand.Rand the generator draws from
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Mix sets how often each kind of visitor appears
type Mix struct {
	OrderProbability     float64
	AdviceProbability    float64
	ComplaintProbability float64
	MaxOrderLines        int
	MaxQuantity          int
	ExtrasProbability    float64
}

// DefaultMix produces mostly buyers with some browsers
func DefaultMix() Mix {
	return Mix{
		OrderProbability:     0.6,
		AdviceProbability:    0.15,
		ComplaintProbability: 0.05,
		MaxOrderLines:        2,
		MaxQuantity:          2,
		ExtrasProbability:    0.3,
	}
}

var complaints = []string{
	"my plant arrived wilted",
	"the queue was too long",
	"the price tag was wrong",
	"nobody could find the orchids",
}

// DefaultNames is the pool customer names are drawn from
var DefaultNames = []string{
	"Ada", "Bongani", "Chloe", "Dumisani", "Elena", "Farah", "Gustav", "Hana",
	"Imani", "Jonas", "Kagiso", "Lerato", "Mateo", "Naledi", "Oskar", "Priya",
}

// Generator creates a reproducible stream of customers from a seeded source
type Generator struct {
	rng     Rand
	catalog *catalog.Catalog
	species []string
	names   []string
	mix     Mix
	seq     int
}

// NewGenerator draws species from the catalog. An empty names list falls back
// to DefaultNames.
func NewGenerator(rng Rand, cat *catalog.Catalog, names []string, mix Mix) *Generator {
	if len(names) == 0 {
		names = DefaultNames
	}
	if mix.MaxOrderLines <= 0 {
		mix.MaxOrderLines = 1
	}
	if mix.MaxQuantity <= 0 {
		mix.MaxQuantity = 1
	}
	return &Generator{rng: rng, catalog: cat, species: cat.Names(), names: names, mix: mix}
}

// Next creates the next customer
func (g *Generator) Next() *Customer {
	g.seq++
	name := fmt.Sprintf("%s #%d", g.names[g.rng.IntN(len(g.names))], g.seq)

	roll := g.rng.Float64()
	switch {
	case len(g.species) == 0:
		// nothing to buy or ask about
		return NewAdviceSeeker(name, g.criteria())
	case roll < g.mix.OrderProbability:
		return NewBuyer(name, g.wishList(), g.extras())
	case roll < g.mix.OrderProbability+g.mix.AdviceProbability:
		return NewAdviceSeeker(name, g.criteria())
	case roll < g.mix.OrderProbability+g.mix.AdviceProbability+g.mix.ComplaintProbability:
		return NewComplainer(name, complaints[g.rng.IntN(len(complaints))])
	default:
		return NewBrowser(name, g.pickSpecies())
	}
}

// Batch creates n customers in arrival order
func (g *Generator) Batch(n int) []*Customer {
	out := make([]*Customer, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Next())
	}
	return out
}

func (g *Generator) pickSpecies() string {
	return g.species[g.rng.IntN(len(g.species))]
}

func (g *Generator) wishList() []request.Line {
	n := 1 + g.rng.IntN(g.mix.MaxOrderLines)
	lines := make([]request.Line, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, request.Line{Species: g.pickSpecies(), Quantity: 1 + g.rng.IntN(g.mix.MaxQuantity)})
	}
	return lines
}

func (g *Generator) extras() sales.Extras {
	if g.rng.Float64() >= g.mix.ExtrasProbability {
		return sales.Extras{}
	}
	card := g.rng.IntN(2) == 0
	e := sales.Extras{Wrapping: true, Card: card}
	if card {
		e.CardMessage = "Enjoy your plants!"
	}
	return e
}

func (g *Generator) criteria() catalog.Criteria {
	levels := []garden.Level{garden.LevelLow, garden.LevelMedium, garden.LevelHigh}
	return catalog.Criteria{
		Sunlight: catalog.Prefer(levels[g.rng.IntN(len(levels))]),
		Water:    catalog.Prefer(levels[g.rng.IntN(len(levels))]),
	}
}
