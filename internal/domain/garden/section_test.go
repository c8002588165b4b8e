package garden_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
)

func newSection(t *testing.T, name string) *garden.GardenSection {
	t.Helper()
	s, err := garden.NewGardenSection(name)
	require.NoError(t, err)
	return s
}

func names(it *garden.Iterator) []string {
	var out []string
	for c := range it.All() {
		out = append(out, c.Name())
	}
	return out
}

// root
// ├── succulents: cactus, aloe vera
// └── tropical
//     ├── monstera
//     └── ferns: fern
func buildTree(t *testing.T) *garden.GardenSection {
	root := newSection(t, "root")
	succulents := newSection(t, "succulents")
	tropical := newSection(t, "tropical")
	ferns := newSection(t, "ferns")

	require.NoError(t, root.Add(succulents))
	require.NoError(t, root.Add(tropical))
	require.NoError(t, succulents.Add(newPlant(t, "cactus")))
	require.NoError(t, succulents.Add(newPlant(t, "aloe vera")))
	require.NoError(t, tropical.Add(newPlant(t, "monstera")))
	require.NoError(t, tropical.Add(ferns))
	require.NoError(t, ferns.Add(newPlant(t, "fern")))
	return root
}

func TestSection_IteratorYieldsPlantsDepthFirst(t *testing.T) {
	root := buildTree(t)

	assert.Equal(t, []string{"cactus", "aloe vera", "monstera", "fern"}, names(root.CreateIterator()))
}

func TestSection_IteratorAllModeIncludesSectionsPreOrder(t *testing.T) {
	root := buildTree(t)

	got := names(garden.NewIterator(root, garden.ModeAll))

	assert.Equal(t, []string{"root", "succulents", "cactus", "aloe vera", "tropical", "monstera", "ferns", "fern"}, got)
}

func TestIterator_IsFiniteAndNotRestartable(t *testing.T) {
	root := buildTree(t)
	it := root.CreateIterator()

	assert.Len(t, names(it), 4)
	_, ok := it.Next()
	assert.False(t, ok)
	assert.False(t, it.HasNext())
}

func TestIterator_IndependentIteratorsYieldSameSequence(t *testing.T) {
	root := buildTree(t)
	first := root.CreateIterator()
	second := root.CreateIterator()

	head, ok := first.Next()
	require.True(t, ok)
	assert.Equal(t, "cactus", head.Name())

	all := names(second)
	assert.Equal(t, []string{"cactus", "aloe vera", "monstera", "fern"}, all)
	assert.Equal(t, all[1:], names(first))
	assert.Equal(t, all, names(root.CreateIterator()))
}

func TestIterator_SnapshotIgnoresLaterMutation(t *testing.T) {
	root := buildTree(t)
	it := root.CreateIterator()

	require.NoError(t, root.Add(newPlant(t, "late arrival")))

	assert.Equal(t, []string{"cactus", "aloe vera", "monstera", "fern"}, names(it))
	assert.Len(t, names(root.CreateIterator()), 5)
}

func TestIterator_PlantYieldsItself(t *testing.T) {
	p := newPlant(t, "cactus")

	assert.Equal(t, []string{"cactus"}, names(p.CreateIterator()))
}

func TestIterator_EmptySection(t *testing.T) {
	root := newSection(t, "root")

	assert.Empty(t, names(root.CreateIterator()))
}

func TestSection_CanSellWhenAnyDescendantSellable(t *testing.T) {
	root := newSection(t, "root")
	inner := newSection(t, "inner")
	require.NoError(t, root.Add(inner))
	require.NoError(t, inner.Add(newPlant(t, "cactus")))
	require.NoError(t, inner.Add(newPlant(t, "dead", garden.WithStage(garden.StageDead))))

	assert.False(t, root.CanSell())

	require.NoError(t, inner.Add(newPlant(t, "aloe vera", garden.WithStage(garden.StageMature))))

	assert.True(t, root.CanSell())
	assert.True(t, inner.CanSell())
}

func TestSection_EmptyCannotSell(t *testing.T) {
	assert.False(t, newSection(t, "empty").CanSell())
}

func TestSection_AddRejectsOwnedNilAndCycles(t *testing.T) {
	a := newSection(t, "a")
	b := newSection(t, "b")
	c := newSection(t, "c")
	require.NoError(t, a.Add(b))
	require.NoError(t, b.Add(c))

	var invalid *garden.ErrInvalidComponent
	assert.ErrorAs(t, a.Add(nil), &invalid)
	assert.ErrorAs(t, c.Add(c), &invalid)
	assert.ErrorAs(t, c.Add(a), &invalid, "ancestor cycle")
	assert.ErrorAs(t, a.Add(c), &invalid, "c already belongs to b")

	p := newPlant(t, "cactus")
	require.NoError(t, a.Add(p))
	assert.ErrorAs(t, b.Add(p), &invalid)
}

func TestSection_RemoveDetachesChild(t *testing.T) {
	root := newSection(t, "root")
	p := newPlant(t, "cactus")
	require.NoError(t, root.Add(p))

	require.NoError(t, root.Remove(p))

	assert.Nil(t, p.Parent())
	assert.Equal(t, 0, root.Len())

	var notChild *garden.ErrNotChild
	assert.ErrorAs(t, root.Remove(p), &notChild)
}

func TestSection_MutationOnlyTouchesOwnChildren(t *testing.T) {
	root := buildTree(t)
	tropical := root.Children()[1].(*garden.GardenSection)
	cactus := root.Children()[0].Children()[0]

	var notChild *garden.ErrNotChild
	assert.ErrorAs(t, tropical.Remove(cactus), &notChild)
	assert.Len(t, names(root.CreateIterator()), 4)
}

func TestSection_TopUpCountsWateredPlants(t *testing.T) {
	root := newSection(t, "root")
	require.NoError(t, root.Add(newPlant(t, "dry", garden.WithWaterLevel(0.1))))
	require.NoError(t, root.Add(newPlant(t, "wet")))
	require.NoError(t, root.Add(newPlant(t, "dead", garden.WithStage(garden.StageDead), garden.WithWaterLevel(0))))

	assert.Equal(t, 1, root.TopUp(0.5))
}

func TestSlots_ReverseRemovalKeepsIndicesValid(t *testing.T) {
	root := newSection(t, "root")
	for _, name := range []string{"a", "b", "c", "d"} {
		opts := []garden.PlantOption{}
		if name != "c" {
			opts = append(opts, garden.WithStage(garden.StageDead))
		}
		require.NoError(t, root.Add(newPlant(t, name, opts...)))
	}

	slots := garden.Slots(root, (*garden.Plant).IsDead)
	require.Len(t, slots, 3)
	for i := len(slots) - 1; i >= 0; i-- {
		removed, err := slots[i].Parent.RemoveAt(slots[i].Index)
		require.NoError(t, err)
		assert.Same(t, slots[i].Plant, removed)
	}

	assert.Equal(t, []string{"c"}, names(root.CreateIterator()))
}

func TestSection_Path(t *testing.T) {
	root := buildTree(t)
	ferns := root.Children()[1].Children()[1].(*garden.GardenSection)

	assert.Equal(t, "root/tropical/ferns", ferns.Path())
}
