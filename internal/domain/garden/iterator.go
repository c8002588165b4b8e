package garden

import "iter"

// Mode selects which nodes an Iterator yields
type Mode int

const (
	// ModePlants yields plant leaves only
	ModePlants Mode = iota
	// ModeAll yields sections and plants, parents before children
	ModeAll
)

// Iterator walks a subtree depth-first in pre-order.
//
// The traversal order is captured when the iterator is created, so tree
// mutation afterwards does not disturb it. An iterator is finite and is not
// restartable: create a new one to walk again.
type Iterator struct {
	items []GardenComponent
	pos   int
}

// NewIterator snapshots the subtree rooted at root. A nil root yields nothing.
func NewIterator(root GardenComponent, mode Mode) *Iterator {
	it := &Iterator{}
	if root == nil || isNilComponent(root) {
		return it
	}

	stack := []GardenComponent{root}
	for len(stack) > 0 {
		n := len(stack) - 1
		node := stack[n]
		stack = stack[:n]

		if node.Kind() == KindPlant || mode == ModeAll {
			it.items = append(it.items, node)
		}
		if sec, ok := node.(*GardenSection); ok {
			for i := len(sec.children) - 1; i >= 0; i-- {
				stack = append(stack, sec.children[i])
			}
		}
	}
	return it
}

// HasNext reports whether Next would yield another component
func (it *Iterator) HasNext() bool {
	return it.pos < len(it.items)
}

// Next returns the next component, or false once the walk is exhausted
func (it *Iterator) Next() (GardenComponent, bool) {
	if !it.HasNext() {
		return nil, false
	}
	c := it.items[it.pos]
	it.pos++
	return c, true
}

// All drains the iterator as a range-over-func sequence
func (it *Iterator) All() iter.Seq[GardenComponent] {
	return func(yield func(GardenComponent) bool) {
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// Plants yields every plant leaf under root in depth-first order
func Plants(root GardenComponent) iter.Seq[*Plant] {
	return func(yield func(*Plant) bool) {
		for c := range NewIterator(root, ModePlants).All() {
			if !yield(c.(*Plant)) {
				return
			}
		}
	}
}

// Slot locates a plant by its owning section and its index among siblings
type Slot struct {
	Parent *GardenSection
	Index  int
	Plant  *Plant
}

// Slots collects the location of every plant below root that matches keep,
// in depth-first pre-order. Removing the returned slots in reverse order
// keeps every remaining index valid.
func Slots(root *GardenSection, keep func(*Plant) bool) []Slot {
	var slots []Slot
	var walk func(sec *GardenSection)
	walk = func(sec *GardenSection) {
		for i, child := range sec.children {
			switch c := child.(type) {
			case *Plant:
				if keep == nil || keep(c) {
					slots = append(slots, Slot{Parent: sec, Index: i, Plant: c})
				}
			case *GardenSection:
				walk(c)
			}
		}
	}
	if root != nil {
		walk(root)
	}
	return slots
}
