package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/greenhouse-go/internal/application/catalog/queries"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
)

func TestGetPlantAdvice_FiltersBySunlightWaterAndCategory(t *testing.T) {
	h := queries.NewGetPlantAdviceHandler(catalog.Default())

	resp, err := h.Handle(context.Background(), &queries.GetPlantAdviceQuery{Sunlight: "high", Water: "low", Category: "Succulent"})

	require.NoError(t, err)
	advice := resp.(*queries.GetPlantAdviceResponse)
	require.NotEmpty(t, advice.Recommendations)
	for _, p := range advice.Recommendations {
		assert.Equal(t, "succulent", p.Category)
	}
	assert.Equal(t, "cactus", advice.Recommendations[0].Name)
}

func TestGetPlantAdvice_EmptyCriteriaMatchesWholeCatalog(t *testing.T) {
	h := queries.NewGetPlantAdviceHandler(catalog.Default())

	resp, err := h.Handle(context.Background(), &queries.GetPlantAdviceQuery{})

	require.NoError(t, err)
	assert.Len(t, resp.(*queries.GetPlantAdviceResponse).Recommendations, catalog.Default().Len())
}

func TestGetPlantAdvice_RejectsUnknownLevel(t *testing.T) {
	h := queries.NewGetPlantAdviceHandler(catalog.Default())

	_, err := h.Handle(context.Background(), &queries.GetPlantAdviceQuery{Water: "soggy"})

	assert.Error(t, err)
}
