package greenhouse

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

// Manager owns the plant inventory tree. Every structural mutation of the
// tree during a run goes through it.
type Manager struct {
	root     *garden.GardenSection
	sections map[string]*garden.GardenSection
	order    []string
}

// NewManager creates a manager around an empty root section
func NewManager(rootName string) (*Manager, error) {
	root, err := garden.NewGardenSection(rootName)
	if err != nil {
		return nil, err
	}
	m := &Manager{
		root:     root,
		sections: make(map[string]*garden.GardenSection),
	}
	m.index(root)
	return m, nil
}

func (m *Manager) Root() *garden.GardenSection {
	return m.root
}

// Section looks up a section by name, ignoring case
func (m *Manager) Section(name string) (*garden.GardenSection, bool) {
	s, ok := m.sections[key(name)]
	return s, ok
}

// SectionNames returns the indexed section names in creation order
func (m *Manager) SectionNames() []string {
	out := make([]string, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.sections[k].Name())
	}
	return out
}

// AddSection creates a section under parent. An empty parent means the root.
// Adding a name that already exists under the same parent returns the
// existing section; under a different parent it is an *ErrInvalidComponent.
func (m *Manager) AddSection(name, parent string) (*garden.GardenSection, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("section", "section name must not be empty")
	}

	owner := m.root
	if strings.TrimSpace(parent) != "" {
		var ok bool
		if owner, ok = m.Section(parent); !ok {
			return nil, shared.NewNotFoundError("section", parent)
		}
	}

	if existing, ok := m.Section(name); ok {
		if existing.Parent() != owner {
			return nil, &garden.ErrInvalidComponent{
				Section: owner.Name(),
				Reason:  fmt.Sprintf("section %q already exists elsewhere in the tree", existing.Name()),
			}
		}
		return existing, nil
	}

	section, err := garden.NewGardenSection(name)
	if err != nil {
		return nil, err
	}
	if err := owner.Add(section); err != nil {
		return nil, err
	}
	m.index(section)
	return section, nil
}

// AddPlant places a plant in the section named after its category, creating
// that section under the root on demand. Uncategorised plants go to the root.
func (m *Manager) AddPlant(plant *garden.Plant) error {
	if plant == nil {
		return shared.NewValidationError("plant", "plant must not be nil")
	}
	if plant.Category() == "" {
		return m.root.Add(plant)
	}
	section, ok := m.Section(plant.Category())
	if !ok {
		var err error
		if section, err = m.AddSection(plant.Category(), ""); err != nil {
			return err
		}
	}
	return section.Add(plant)
}

// AddPlantTo places a plant in an existing named section
func (m *Manager) AddPlantTo(sectionName string, plant *garden.Plant) error {
	section, ok := m.Section(sectionName)
	if !ok {
		return shared.NewNotFoundError("section", sectionName)
	}
	return section.Add(plant)
}

// Plants returns every plant in depth-first order
func (m *Manager) Plants() []*garden.Plant {
	var out []*garden.Plant
	for p := range garden.Plants(m.root) {
		out = append(out, p)
	}
	return out
}

// Find returns the first plant of the named species, or nil
func (m *Manager) Find(name string) *garden.Plant {
	name = key(name)
	for p := range garden.Plants(m.root) {
		if key(p.Name()) == name {
			return p
		}
	}
	return nil
}

// FindMature returns the first mature, unsold plant of the named species, or nil
func (m *Manager) FindMature(name string) *garden.Plant {
	units := m.FindSellable(name, 1)
	if len(units) == 0 {
		return nil
	}
	return units[0]
}

// FindSellable returns up to n distinct sellable units of the named species
func (m *Manager) FindSellable(name string, n int) []*garden.Plant {
	if n <= 0 {
		return nil
	}
	name = key(name)
	var out []*garden.Plant
	for p := range garden.Plants(m.root) {
		if key(p.Name()) == name && p.CanSell() {
			out = append(out, p)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// Available counts the sellable units of the named species
func (m *Manager) Available(name string) int {
	name = key(name)
	count := 0
	for p := range garden.Plants(m.root) {
		if key(p.Name()) == name && p.CanSell() {
			count++
		}
	}
	return count
}

// RemovePlant detaches a plant from whichever section owns it
func (m *Manager) RemovePlant(plant *garden.Plant) error {
	if plant == nil {
		return shared.NewValidationError("plant", "plant must not be nil")
	}
	parent := plant.Parent()
	if parent == nil || !m.owns(parent) {
		return shared.NewNotFoundError("plant", plant.ID())
	}
	return parent.Remove(plant)
}

// RemovePlantByName removes the first plant of the named species
func (m *Manager) RemovePlantByName(name string) error {
	plant := m.Find(name)
	if plant == nil {
		return shared.NewNotFoundError("plant", name)
	}
	return m.RemovePlant(plant)
}

// ClearAllDead removes every dead plant from the tree and returns how many
// were removed. Positions are collected first and removed in reverse, so
// sibling indices stay valid. Calling it again is a no-op.
func (m *Manager) ClearAllDead() int {
	slots := garden.Slots(m.root, (*garden.Plant).IsDead)
	removed := 0
	for i := len(slots) - 1; i >= 0; i-- {
		if _, err := slots[i].Parent.RemoveAt(slots[i].Index); err == nil {
			removed++
		}
	}
	return removed
}

// TickReport summarises one aging tick across the tree
type TickReport struct {
	Advanced int
	Matured  int
	Died     int
}

// AdvanceAll forwards one aging tick to every plant
func (m *Manager) AdvanceAll() TickReport {
	var r TickReport
	for p := range garden.Plants(m.root) {
		tr := p.Advance()
		r.Advanced++
		if tr.Matured() {
			r.Matured++
		}
		if tr.Died() {
			r.Died++
		}
	}
	return r
}

// WaterSection tops up every plant in the named section whose water level is
// below threshold. Returns the number of plants watered.
func (m *Manager) WaterSection(sectionName string, threshold float64) (int, error) {
	section, ok := m.Section(sectionName)
	if !ok {
		return 0, shared.NewNotFoundError("section", sectionName)
	}
	return section.TopUp(threshold), nil
}

// MoveSection moves every living plant in the named section. An empty
// location sends each plant to the spot its sunlight needs call for.
func (m *Manager) MoveSection(sectionName string, location garden.Location) (int, error) {
	section, ok := m.Section(sectionName)
	if !ok {
		return 0, shared.NewNotFoundError("section", sectionName)
	}
	moved := 0
	for p := range garden.Plants(section) {
		if p.IsDead() {
			continue
		}
		if location == "" {
			p.ExposeToSunlight()
		} else {
			p.MoveTo(location)
		}
		moved++
	}
	return moved, nil
}

func (m *Manager) String() string {
	c := m.Census()
	return fmt.Sprintf("greenhouse %q: %d plants (%d seedling, %d mature, %d dead) in %d sections",
		m.root.Name(), c.Total, c.Seedling, c.Mature, c.Dead, len(m.order))
}

func (m *Manager) index(section *garden.GardenSection) {
	k := key(section.Name())
	m.sections[k] = section
	m.order = append(m.order, k)
}

func (m *Manager) owns(section *garden.GardenSection) bool {
	for s := section; s != nil; s = s.Parent() {
		if s == m.root {
			return true
		}
	}
	return false
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
