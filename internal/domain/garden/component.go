package garden

// Kind discriminates the two component variants
type Kind string

const (
	KindPlant   Kind = "PLANT"
	KindSection Kind = "SECTION"
)

// GardenComponent is a node of the plant inventory tree: either a *Plant
// leaf or a *GardenSection. The set is closed; setParent keeps other
// packages from adding variants.
type GardenComponent interface {
	Name() string
	Kind() Kind
	CanSell() bool
	CreateIterator() *Iterator

	Add(child GardenComponent) error
	Remove(child GardenComponent) error
	Children() []GardenComponent
	Parent() *GardenSection

	// Care operations apply to every plant at or below the component
	Water(amount float64)
	TopUp(threshold float64) int
	ExposeToSunlight()
	MoveTo(location Location)

	setParent(parent *GardenSection)
}
