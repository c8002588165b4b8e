package supplies

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

// Category groups non-plant stock
type Category string

const (
	CategorySoil      Category = "SOIL"
	CategoryContainer Category = "CONTAINER"
	CategoryWrapper   Category = "WRAPPER"
	CategoryCard      Category = "CARD"
)

// ParseCategory accepts a category name in any case
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToUpper(strings.TrimSpace(s))); c {
	case CategorySoil, CategoryContainer, CategoryWrapper, CategoryCard:
		return c, nil
	}
	return "", fmt.Errorf("unknown supply category %q", s)
}

// Standard items used by the product builders
const (
	BasicSoil        = "Basic Soil"
	BasicContainer   = "Basic Container"
	BouquetContainer = "Bouquet Head Container"
	KraftWrapping    = "Kraft Wrapping"
	GreetingCard     = "Greeting Card"
)

// Item identifies one kind of supply
type Item struct {
	Category Category
	Name     string
}

func (i Item) String() string {
	return fmt.Sprintf("%s/%s", i.Category, i.Name)
}

// Requirement is a quantity of an item needed by a product
type Requirement struct {
	Item     Item
	Quantity int
}

// StockLevel is a point-in-time view of one item
type StockLevel struct {
	Item     Item
	Quantity int
	Price    shared.Money
}

// ErrInsufficientSupply indicates a product could not be assembled
type ErrInsufficientSupply struct {
	Item      Item
	Requested int
	Available int
}

func (e *ErrInsufficientSupply) Error() string {
	return fmt.Sprintf("insufficient supply of %s: need %d, have %d", e.Item, e.Requested, e.Available)
}

// Inventory tracks soil, containers, wrapping and cards
type Inventory struct {
	stock  map[Item]int
	prices map[Item]shared.Money
}

func NewInventory() *Inventory {
	return &Inventory{
		stock:  make(map[Item]int),
		prices: make(map[Item]shared.Money),
	}
}

// AddStock increases the quantity held of an item
func (inv *Inventory) AddStock(category Category, name string, quantity int) error {
	if quantity < 0 {
		return shared.NewValidationError("quantity", "stock quantity must not be negative")
	}
	if strings.TrimSpace(name) == "" {
		return shared.NewValidationError("name", "supply name must not be empty")
	}
	inv.stock[Item{Category: category, Name: name}] += quantity
	return nil
}

// SetPrice records the unit price charged for an item
func (inv *Inventory) SetPrice(category Category, name string, price shared.Money) {
	inv.prices[Item{Category: category, Name: name}] = price
}

func (inv *Inventory) Price(item Item) shared.Money {
	return inv.prices[item]
}

func (inv *Inventory) Quantity(category Category, name string) int {
	return inv.stock[Item{Category: category, Name: name}]
}

// Exists reports whether the item has ever been stocked
func (inv *Inventory) Exists(category Category, name string) bool {
	_, ok := inv.stock[Item{Category: category, Name: name}]
	return ok
}

// UseItem consumes quantity units of an item
func (inv *Inventory) UseItem(category Category, name string, quantity int) error {
	return inv.UseAll([]Requirement{{Item: Item{Category: category, Name: name}, Quantity: quantity}})
}

// Check verifies every requirement can be met without consuming anything
func (inv *Inventory) Check(reqs []Requirement) error {
	need := make(map[Item]int, len(reqs))
	for _, r := range reqs {
		if r.Quantity < 0 {
			return shared.NewValidationError("quantity", "requirement quantity must not be negative")
		}
		need[r.Item] += r.Quantity
	}
	for _, r := range reqs {
		if have := inv.stock[r.Item]; need[r.Item] > have {
			return &ErrInsufficientSupply{Item: r.Item, Requested: need[r.Item], Available: have}
		}
	}
	return nil
}

// UseAll consumes every requirement, or nothing if any cannot be met
func (inv *Inventory) UseAll(reqs []Requirement) error {
	if err := inv.Check(reqs); err != nil {
		return err
	}
	for _, r := range reqs {
		inv.stock[r.Item] -= r.Quantity
	}
	return nil
}

// Levels returns the stock of every known item sorted by category then name
func (inv *Inventory) Levels() []StockLevel {
	out := make([]StockLevel, 0, len(inv.stock))
	for item, qty := range inv.stock {
		out = append(out, StockLevel{Item: item, Quantity: qty, Price: inv.prices[item]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Item.Category != out[j].Item.Category {
			return out[i].Item.Category < out[j].Item.Category
		}
		return out[i].Item.Name < out[j].Item.Name
	})
	return out
}
