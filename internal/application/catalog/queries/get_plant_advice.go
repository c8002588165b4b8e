package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/greenhouse-go/internal/application/common"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
)

// GetPlantAdviceQuery asks for species matching sunlight and water needs.
// Empty fields match anything.
type GetPlantAdviceQuery struct {
	Sunlight string
	Water    string
	Category string
}

// GetPlantAdviceResponse lists the matching species in catalog order
type GetPlantAdviceResponse struct {
	Criteria        catalog.Criteria
	Recommendations []catalog.PlantInfo
}

// GetPlantAdviceHandler handles the GetPlantAdvice query
type GetPlantAdviceHandler struct {
	catalog *catalog.Catalog
}

// NewGetPlantAdviceHandler creates a new GetPlantAdviceHandler
func NewGetPlantAdviceHandler(cat *catalog.Catalog) *GetPlantAdviceHandler {
	return &GetPlantAdviceHandler{catalog: cat}
}

// Handle executes the GetPlantAdvice query
func (h *GetPlantAdviceHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetPlantAdviceQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPlantAdviceQuery")
	}

	sunlight, err := catalog.ParsePreference(query.Sunlight)
	if err != nil {
		return nil, fmt.Errorf("invalid sunlight preference: %w", err)
	}
	water, err := catalog.ParsePreference(query.Water)
	if err != nil {
		return nil, fmt.Errorf("invalid water preference: %w", err)
	}

	criteria := catalog.Criteria{Sunlight: sunlight, Water: water, Category: query.Category}
	return &GetPlantAdviceResponse{
		Criteria:        criteria,
		Recommendations: h.catalog.Recommend(criteria),
	}, nil
}
