package garden

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

// GardenSection is an interior node grouping plants and sub-sections.
// Children keep insertion order and each has exactly one owning section.
type GardenSection struct {
	name     string
	children []GardenComponent
	parent   *GardenSection
}

// NewGardenSection creates an empty section
func NewGardenSection(name string) (*GardenSection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name", "section name must not be empty")
	}
	return &GardenSection{name: name}, nil
}

func (s *GardenSection) Name() string           { return s.name }
func (s *GardenSection) Kind() Kind             { return KindSection }
func (s *GardenSection) Parent() *GardenSection { return s.parent }
func (s *GardenSection) Len() int               { return len(s.children) }

func (s *GardenSection) setParent(parent *GardenSection) { s.parent = parent }

// Children returns a copy of the ordered child list
func (s *GardenSection) Children() []GardenComponent {
	out := make([]GardenComponent, len(s.children))
	copy(out, s.children)
	return out
}

// Child returns the child at index
func (s *GardenSection) Child(index int) (GardenComponent, error) {
	if index < 0 || index >= len(s.children) {
		return nil, fmt.Errorf("section %q: child index %d out of range [0,%d)", s.name, index, len(s.children))
	}
	return s.children[index], nil
}

// CanSell reports whether at least one plant below this section can be sold
func (s *GardenSection) CanSell() bool {
	for _, child := range s.children {
		if child.CanSell() {
			return true
		}
	}
	return false
}

// CreateIterator returns a fresh depth-first iterator over the plants below
// this section
func (s *GardenSection) CreateIterator() *Iterator {
	return NewIterator(s, ModePlants)
}

// Add appends child. A child already owned elsewhere, the section itself, or
// one of its ancestors is refused.
func (s *GardenSection) Add(child GardenComponent) error {
	if child == nil || isNilComponent(child) {
		return &ErrInvalidComponent{Section: s.name, Reason: "component is nil"}
	}
	if child.Parent() != nil {
		return &ErrInvalidComponent{
			Section: s.name,
			Reason:  fmt.Sprintf("%q already belongs to section %q", child.Name(), child.Parent().Name()),
		}
	}
	if sec, ok := child.(*GardenSection); ok {
		for anc := s; anc != nil; anc = anc.parent {
			if anc == sec {
				return &ErrInvalidComponent{
					Section: s.name,
					Reason:  fmt.Sprintf("adding %q would create a cycle", sec.name),
				}
			}
		}
	}

	s.children = append(s.children, child)
	child.setParent(s)
	return nil
}

// Remove detaches child, matched by identity
func (s *GardenSection) Remove(child GardenComponent) error {
	for i, c := range s.children {
		if c == child {
			_, err := s.RemoveAt(i)
			return err
		}
	}
	name := "<nil>"
	if child != nil && !isNilComponent(child) {
		name = child.Name()
	}
	return &ErrNotChild{Section: s.name, Component: name}
}

// RemoveAt detaches and returns the child at index. Later siblings shift
// down by one.
func (s *GardenSection) RemoveAt(index int) (GardenComponent, error) {
	child, err := s.Child(index)
	if err != nil {
		return nil, err
	}
	s.children = append(s.children[:index], s.children[index+1:]...)
	child.setParent(nil)
	return child, nil
}

// Care operations

func (s *GardenSection) Water(amount float64) {
	for _, child := range s.children {
		child.Water(amount)
	}
}

// TopUp refills every living plant below threshold and returns how many
// were watered
func (s *GardenSection) TopUp(threshold float64) int {
	watered := 0
	for _, child := range s.children {
		watered += child.TopUp(threshold)
	}
	return watered
}

func (s *GardenSection) ExposeToSunlight() {
	for _, child := range s.children {
		child.ExposeToSunlight()
	}
}

func (s *GardenSection) MoveTo(location Location) {
	for _, child := range s.children {
		child.MoveTo(location)
	}
}

// Path returns the slash-joined names from the root down to this section
func (s *GardenSection) Path() string {
	if s.parent == nil {
		return s.name
	}
	return s.parent.Path() + "/" + s.name
}

func isNilComponent(c GardenComponent) bool {
	switch v := c.(type) {
	case *Plant:
		return v == nil
	case *GardenSection:
		return v == nil
	}
	return false
}
