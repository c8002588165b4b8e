package garden

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

// waterTolerance absorbs float rounding when a top-up lands exactly on 1.0
const waterTolerance = 1e-9

// Plant is a leaf of the inventory tree: one individual sellable unit.
//
// Invariants:
//   - stage never decreases
//   - water level stays within [0,1] while alive; leaving that range kills the plant
//   - a sold plant never reports CanSell
type Plant struct {
	id       string
	name     string
	category string
	price    shared.Money
	care     CareProfile
	policy   LifecyclePolicy

	state    PlantState
	age      int
	water    float64
	location Location
	sold     bool

	parent *GardenSection
}

// PlantOption customises a plant at construction
type PlantOption func(*Plant)

// WithID fixes the plant identifier instead of generating a UUID
func WithID(id string) PlantOption {
	return func(p *Plant) { p.id = id }
}

// WithPolicy overrides the default lifecycle thresholds
func WithPolicy(policy LifecyclePolicy) PlantOption {
	return func(p *Plant) { p.policy = policy }
}

// WithStage starts the plant in the given stage. Used for restocking mature
// units and in fixtures.
func WithStage(stage Stage) PlantOption {
	return func(p *Plant) { p.state = StateFor(stage) }
}

// WithAge starts the plant at the given age
func WithAge(age int) PlantOption {
	return func(p *Plant) { p.age = age }
}

// WithWaterLevel starts the plant at the given water level
func WithWaterLevel(level float64) PlantOption {
	return func(p *Plant) { p.water = level }
}

// NewPlant creates a seedling kept inside with a full water level
func NewPlant(name, category string, price shared.Money, care CareProfile, opts ...PlantOption) (*Plant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name", "plant name must not be empty")
	}
	if price < 0 {
		return nil, shared.NewValidationError("price", fmt.Sprintf("price must not be negative, got %s", price))
	}

	p := &Plant{
		id:       uuid.NewString(),
		name:     name,
		category: strings.ToLower(strings.TrimSpace(category)),
		price:    price,
		care:     care,
		policy:   DefaultLifecyclePolicy(),
		state:    SeedlingState{},
		water:    1.0,
		location: LocationInside,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.water < 0 || p.water > 1 {
		return nil, shared.NewValidationError("water", "water level must be within [0,1]")
	}
	if p.age < 0 {
		return nil, shared.NewValidationError("age", "age must not be negative")
	}
	return p, nil
}

// Getters

func (p *Plant) ID() string                  { return p.id }
func (p *Plant) Name() string                { return p.name }
func (p *Plant) Category() string            { return p.category }
func (p *Plant) Price() shared.Money         { return p.price }
func (p *Plant) Care() CareProfile           { return p.care }
func (p *Plant) Policy() LifecyclePolicy     { return p.policy }
func (p *Plant) State() PlantState           { return p.state }
func (p *Plant) Stage() Stage                { return p.state.Stage() }
func (p *Plant) Age() int                    { return p.age }
func (p *Plant) WaterLevel() float64         { return p.water }
func (p *Plant) Location() Location          { return p.location }
func (p *Plant) IsSold() bool                { return p.sold }
func (p *Plant) IsDead() bool                { return p.state.Stage() == StageDead }
func (p *Plant) Kind() Kind                  { return KindPlant }
func (p *Plant) Parent() *GardenSection      { return p.parent }
func (p *Plant) Children() []GardenComponent { return nil }

func (p *Plant) setParent(parent *GardenSection) { p.parent = parent }

// CanSell is evaluated from the current state on every call
func (p *Plant) CanSell() bool {
	return !p.sold && p.state.CanSell()
}

// CreateIterator returns an iterator that yields only this plant
func (p *Plant) CreateIterator() *Iterator {
	return NewIterator(p, ModePlants)
}

func (p *Plant) Add(GardenComponent) error {
	return &ErrUnsupportedOperation{Operation: "add", Component: p.name}
}

func (p *Plant) Remove(GardenComponent) error {
	return &ErrUnsupportedOperation{Operation: "remove", Component: p.name}
}

// Advance applies one aging tick: the plant ages, loses water according to
// its care profile, then its state picks the successor.
func (p *Plant) Advance() Transition {
	from := p.state.Stage()
	if from == StageDead {
		return Transition{From: from, To: from}
	}

	p.age++
	p.water -= p.care.WaterLoss()
	if p.water < -waterTolerance {
		p.water = 0
		p.state = DeadState{}
		return Transition{From: from, To: StageDead}
	}
	if p.water < 0 {
		p.water = 0
	}
	p.state = p.state.advance(p)
	return Transition{From: from, To: p.state.Stage()}
}

// Water adds to the water level. Pushing it above full drowns the plant.
func (p *Plant) Water(amount float64) {
	if p.IsDead() || amount <= 0 {
		return
	}
	p.water += amount
	if p.water > 1+waterTolerance {
		p.water = 1
		p.state = DeadState{}
	} else if p.water > 1 {
		p.water = 1
	}
}

// TopUp refills the plant to full if its level is below threshold.
// Returns 1 when the plant was watered.
func (p *Plant) TopUp(threshold float64) int {
	if p.IsDead() || p.water >= threshold {
		return 0
	}
	p.water = 1
	return 1
}

// ExposeToSunlight moves the plant to the location its sunlight needs call for
func (p *Plant) ExposeToSunlight() {
	if p.IsDead() {
		return
	}
	p.location = p.care.PreferredLocation()
}

func (p *Plant) MoveTo(location Location) {
	if p.IsDead() {
		return
	}
	p.location = location
}

// MarkSold records the sale of this unit. Only sellable units can be sold.
func (p *Plant) MarkSold() error {
	if p.sold {
		return &ErrAlreadySold{PlantID: p.id, Name: p.name}
	}
	if !p.state.CanSell() {
		return shared.NewValidationError("state", fmt.Sprintf("%s %s cannot be sold while %s", p.name, p.id, p.state.Name()))
	}
	p.sold = true
	return nil
}

func (p *Plant) String() string {
	return fmt.Sprintf("%s [%s, age %d, water %.2f, %s]", p.name, p.state.Name(), p.age, p.water, p.location)
}
