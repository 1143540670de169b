package queries

import (
	"errors"
	"strings"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrSearchListingsQueryIsNotConstructed = errors.New(
	"SearchListingsQuery must be created via NewSearchListingsQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// SearchListingsFilters carries the optional marketplace search criteria.
// Zero values mean "no filter"; District and State match by substring,
// case-insensitively.
type SearchListingsFilters struct {
	ListingType *listing.Type
	Status      *listing.Status
	District    string
	State       string
	MinPrice    *float64
	MaxPrice    *float64
	Category    string
	Grade       string
	AnimalType  string
	LandType    string
	Page        int
	Limit       int
}

// SearchListingsQuery retrieves marketplace listings matching a set of
// filters, newest first, paginated.
//
// Example:
//
//	t := listing.TypeCrop
//	query, err := NewSearchListingsQuery(SearchListingsFilters{
//	    ListingType: &t,
//	    State:       "maharashtra",
//	    Category:    "wheat",
//	})
//	if err != nil {
//	    return err
//	}
//
//	listings, err := NewSearchListingsQueryHandler(db).Handle(ctx, query)
type SearchListingsQuery struct { //nolint:recvcheck //using for validation
	filters SearchListingsFilters

	guard guard.ConstructorGuard
}

// NewSearchListingsQuery creates a listing search query. Page defaults to 1
// and limit to 20, capped at 100.
func NewSearchListingsQuery(filters SearchListingsFilters) (SearchListingsQuery, error) {
	if filters.ListingType != nil {
		if err := filters.ListingType.Validate(); err != nil {
			return SearchListingsQuery{}, err
		}
	}
	if filters.Status != nil {
		if err := filters.Status.Validate(); err != nil {
			return SearchListingsQuery{}, err
		}
	}
	if filters.MinPrice != nil && *filters.MinPrice < 0 {
		return SearchListingsQuery{}, errs.NewValueIsInvalidError("minPrice")
	}
	if filters.MaxPrice != nil && *filters.MaxPrice < 0 {
		return SearchListingsQuery{}, errs.NewValueIsInvalidError("maxPrice")
	}
	if filters.Page < 0 || filters.Limit < 0 {
		return SearchListingsQuery{}, errs.NewValueIsInvalidError("page")
	}

	if filters.Page == 0 {
		filters.Page = 1
	}
	if filters.Limit == 0 {
		filters.Limit = defaultPageSize
	}
	if filters.Limit > maxPageSize {
		filters.Limit = maxPageSize
	}

	filters.District = strings.TrimSpace(filters.District)
	filters.State = strings.TrimSpace(filters.State)
	filters.Category = strings.TrimSpace(filters.Category)
	filters.Grade = strings.TrimSpace(filters.Grade)
	filters.AnimalType = strings.TrimSpace(filters.AnimalType)
	filters.LandType = strings.TrimSpace(filters.LandType)

	return SearchListingsQuery{filters: filters, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchListingsQuery) Validate() error {
	return q.guard.Validate(ErrSearchListingsQueryIsNotConstructed)
}

// Filters returns the normalized search criteria.
func (q SearchListingsQuery) Filters() SearchListingsFilters {
	return q.filters
}

// SearchListingsQueryResponse is one listing row in the search result.
// Type-specific fields are populated for the matching listing type and left
// zero for the others.
type SearchListingsQueryResponse struct {
	ID          kernel.UUID
	OwnerID     kernel.UUID
	ListingType string
	Title       string
	Description string
	Price       float64
	District    string
	State       string
	Status      string
	CreatedAt   time.Time

	// Crop fields.
	QuantityValue float64
	QuantityUnit  string
	Category      string
	Grade         string

	// Livestock fields.
	AnimalType   string
	Breed        string
	HealthStatus string
	Count        int

	// Land fields.
	AreaAcres float64
	LandType  string
}
