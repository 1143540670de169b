package queries

import (
	"context"

	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/core/domain/services"
)

// GetPriceSuggestionQueryHandler serves market-rate estimates from the
// in-process price advisor. No database access is involved; the advisor
// works off its reference rate tables.
type GetPriceSuggestionQueryHandler struct {
	advisor services.PriceAdvisor
}

// NewGetPriceSuggestionQueryHandler creates a handler for price suggestion queries.
func NewGetPriceSuggestionQueryHandler(advisor services.PriceAdvisor) GetPriceSuggestionQueryHandler {
	return GetPriceSuggestionQueryHandler{advisor: advisor}
}

// Handle executes the estimate for the query's listing type.
func (h GetPriceSuggestionQueryHandler) Handle(
	_ context.Context,
	query GetPriceSuggestionQuery,
) (GetPriceSuggestionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPriceSuggestionQueryResponse{}, err
	}

	var suggestion services.PriceSuggestion
	var err error

	switch query.listingType {
	case listing.TypeCrop:
		suggestion, err = h.advisor.SuggestCrop(query.category, query.grade, query.unit)
	case listing.TypeLivestock:
		suggestion, err = h.advisor.SuggestLivestock(query.animalType)
	case listing.TypeLand:
		suggestion, err = h.advisor.SuggestLand(query.landType)
	case listing.TypeUnknown:
		// Unreachable: the constructor validates the type.
	}
	if err != nil {
		return GetPriceSuggestionQueryResponse{}, err
	}

	return GetPriceSuggestionQueryResponse{
		Suggested: suggestion.Suggested,
		Low:       suggestion.Low,
		High:      suggestion.High,
		Unit:      suggestion.Unit,
		Rationale: suggestion.Rationale,
	}, nil
}
