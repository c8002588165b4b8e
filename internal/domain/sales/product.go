package sales

import (
	"strings"

	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

// ProductKind distinguishes single potted plants from bouquets
type ProductKind string

const (
	ProductPotted  ProductKind = "POTTED"
	ProductBouquet ProductKind = "BOUQUET"
)

// Product is an assembled sale: plants plus the supplies packaging them
type Product struct {
	Kind        ProductKind
	Plants      []*garden.Plant
	Supplies    []supplies.Item
	CardMessage string
}

// Requirements lists the supplies the product consumes
func (p *Product) Requirements() []supplies.Requirement {
	reqs := make([]supplies.Requirement, 0, len(p.Supplies))
	for _, item := range p.Supplies {
		reqs = append(reqs, supplies.Requirement{Item: item, Quantity: 1})
	}
	return reqs
}

// Lines converts the product to order lines, grouping plants by species
func (p *Product) Lines(prices func(supplies.Item) shared.Money) []LineItem {
	var lines []LineItem
	bySpecies := make(map[string]int)
	for _, plant := range p.Plants {
		if i, ok := bySpecies[plant.Name()]; ok {
			lines[i].Quantity++
			continue
		}
		bySpecies[plant.Name()] = len(lines)
		lines = append(lines, LineItem{Plant: plant, Quantity: 1})
	}
	for _, item := range p.Supplies {
		var price shared.Money
		if prices != nil {
			price = prices(item)
		}
		lines = append(lines, LineItem{Supply: item, UnitPrice: price, Quantity: 1})
	}
	return lines
}

func (p *Product) String() string {
	names := make([]string, len(p.Plants))
	for i, plant := range p.Plants {
		names[i] = plant.Name()
	}
	s := strings.ToLower(string(p.Kind)) + " of " + strings.Join(names, ", ")
	for _, item := range p.Supplies {
		s += " + " + item.Name
	}
	return s
}

// Extras are the optional finishing touches a customer can ask for
type Extras struct {
	Wrapping    bool
	Card        bool
	CardMessage string
}

// ProductBuilder assembles a product step by step
type ProductBuilder interface {
	AddPlants() ProductBuilder
	AddSoil() ProductBuilder
	AddContainer() ProductBuilder
	Product() *Product
}

// BasicBuilder pots a single plant in soil and a basic container
type BasicBuilder struct {
	product *Product
	plant   *garden.Plant
}

func NewBasicBuilder(plant *garden.Plant) *BasicBuilder {
	return &BasicBuilder{product: &Product{Kind: ProductPotted}, plant: plant}
}

func (b *BasicBuilder) AddPlants() ProductBuilder {
	b.product.Plants = []*garden.Plant{b.plant}
	return b
}

func (b *BasicBuilder) AddSoil() ProductBuilder {
	b.product.Supplies = append(b.product.Supplies, supplies.Item{Category: supplies.CategorySoil, Name: supplies.BasicSoil})
	return b
}

func (b *BasicBuilder) AddContainer() ProductBuilder {
	b.product.Supplies = append(b.product.Supplies, supplies.Item{Category: supplies.CategoryContainer, Name: supplies.BasicContainer})
	return b
}

func (b *BasicBuilder) Product() *Product { return b.product }

// BouquetBuilder ties several plants into one bouquet head container. Cut
// stems need no soil.
type BouquetBuilder struct {
	product *Product
	plants  []*garden.Plant
}

func NewBouquetBuilder(plants []*garden.Plant) *BouquetBuilder {
	return &BouquetBuilder{product: &Product{Kind: ProductBouquet}, plants: plants}
}

func (b *BouquetBuilder) AddPlants() ProductBuilder {
	b.product.Plants = append([]*garden.Plant(nil), b.plants...)
	return b
}

func (b *BouquetBuilder) AddSoil() ProductBuilder { return b }

func (b *BouquetBuilder) AddContainer() ProductBuilder {
	b.product.Supplies = append(b.product.Supplies, supplies.Item{Category: supplies.CategoryContainer, Name: supplies.BouquetContainer})
	return b
}

func (b *BouquetBuilder) Product() *Product { return b.product }

// Assemble picks a builder for the plants, runs every step and applies the
// extras. One plant makes a potted product; more make a bouquet.
func Assemble(plants []*garden.Plant, extras Extras) (*Product, error) {
	if len(plants) == 0 {
		return nil, shared.NewValidationError("plants", "a product needs at least one plant")
	}

	var builder ProductBuilder
	if len(plants) == 1 {
		builder = NewBasicBuilder(plants[0])
	} else {
		builder = NewBouquetBuilder(plants)
	}
	product := builder.AddPlants().AddSoil().AddContainer().Product()

	if extras.Wrapping {
		product = WithWrapping(product)
	}
	if extras.Card {
		product = WithCard(product, extras.CardMessage)
	}
	return product, nil
}

// WithWrapping adds kraft wrapping to a product
func WithWrapping(p *Product) *Product {
	p.Supplies = append(p.Supplies, supplies.Item{Category: supplies.CategoryWrapper, Name: supplies.KraftWrapping})
	return p
}

// WithCard attaches a greeting card with a message
func WithCard(p *Product, message string) *Product {
	p.Supplies = append(p.Supplies, supplies.Item{Category: supplies.CategoryCard, Name: supplies.GreetingCard})
	p.CardMessage = message
	return p
}
