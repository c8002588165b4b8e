package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

func names(infos []catalog.PlantInfo) []string {
	out := make([]string, len(infos))
	for i, info := range infos {
		out[i] = info.Name
	}
	return out
}

func TestDefault_HasTwentySpeciesInFourCategories(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t, 20, c.Len())
	assert.Equal(t, []string{"succulent", "tropical", "herb", "flowering"}, c.Categories())
	for _, cat := range c.Categories() {
		assert.Len(t, c.ByCategory(cat), 5, cat)
	}
}

func TestLookup_IgnoresCase(t *testing.T) {
	info, ok := catalog.Default().Lookup("  Peace Lily ")

	require.True(t, ok)
	assert.Equal(t, "tropical", info.Category)
	assert.Equal(t, garden.CareProfile{Sunlight: garden.LevelLow, Water: garden.LevelHigh}, info.Care)
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := catalog.New([]catalog.PlantInfo{
		{Name: "Rose", Category: "flowering"},
		{Name: "rose", Category: "flowering"},
	})

	var verr *shared.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRecommend_MatchesStatedPreferencesOnly(t *testing.T) {
	c := catalog.Default()

	got := c.Recommend(catalog.Criteria{
		Sunlight: catalog.Prefer(garden.LevelLow),
		Water:    catalog.Prefer(garden.LevelHigh),
	})
	assert.Equal(t, []string{"peace lily", "hydrangea"}, names(got))

	got = c.Recommend(catalog.Criteria{Water: catalog.Prefer(garden.LevelHigh), Category: "herb"})
	assert.Equal(t, []string{"basil", "mint"}, names(got))

	assert.Len(t, c.Recommend(catalog.Criteria{}), 20)
}

func TestParsePreference(t *testing.T) {
	anyLevel, err := catalog.ParsePreference("any")
	require.NoError(t, err)
	assert.True(t, anyLevel.Matches(garden.LevelHigh))

	med, err := catalog.ParsePreference("med")
	require.NoError(t, err)
	assert.True(t, med.Matches(garden.LevelMedium))
	assert.False(t, med.Matches(garden.LevelLow))

	_, err = catalog.ParsePreference("lots")
	assert.Error(t, err)
}

func TestNewPlant_FromCatalog(t *testing.T) {
	c := catalog.Default()

	p, err := c.NewPlant("Basil")
	require.NoError(t, err)
	assert.Equal(t, "basil", p.Name())
	assert.Equal(t, "herb", p.Category())
	assert.Equal(t, shared.Dollars(4.50), p.Price())

	_, err = c.NewPlant("triffid")
	var nf *shared.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
