package queries

import (
	"errors"
	"strings"

	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/pkg/guard"
)

var ErrGetPriceSuggestionQueryIsNotConstructed = errors.New(
	"GetPriceSuggestionQuery must be created via NewGetPriceSuggestionQuery constructor",
)

// GetPriceSuggestionQuery asks the price advisor for a market-rate estimate
// before a farmer publishes a listing. Which attributes matter depends on
// the listing type: category/grade/unit for crops, animal type for
// livestock, land type for land.
//
// Example:
//
//	query, err := NewGetPriceSuggestionQuery(listing.TypeCrop, "wheat", "A", listing.UnitQuintal, "", "")
//	if err != nil {
//	    return err
//	}
//
//	suggestion, err := NewGetPriceSuggestionQueryHandler(advisor).Handle(ctx, query)
type GetPriceSuggestionQuery struct { //nolint:recvcheck //using for validation
	listingType listing.Type
	category    string
	grade       string
	unit        listing.Unit
	animalType  string
	landType    string

	guard guard.ConstructorGuard
}

// NewGetPriceSuggestionQuery creates a price suggestion query.
// The unit defaults to kg when unset for crop queries.
func NewGetPriceSuggestionQuery(
	listingType listing.Type,
	category, grade string,
	unit listing.Unit,
	animalType, landType string,
) (GetPriceSuggestionQuery, error) {
	if err := listingType.Validate(); err != nil {
		return GetPriceSuggestionQuery{}, err
	}
	if listingType == listing.TypeCrop && unit == listing.UnitUnknown {
		unit = listing.UnitKg
	}

	return GetPriceSuggestionQuery{
		listingType: listingType,
		category:    strings.TrimSpace(category),
		grade:       strings.TrimSpace(grade),
		unit:        unit,
		animalType:  strings.TrimSpace(animalType),
		landType:    strings.TrimSpace(landType),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPriceSuggestionQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceSuggestionQueryIsNotConstructed)
}

// GetPriceSuggestionQueryResponse carries the advisor's estimate.
type GetPriceSuggestionQueryResponse struct {
	Suggested float64
	Low       float64
	High      float64
	Unit      string
	Rationale string
}
