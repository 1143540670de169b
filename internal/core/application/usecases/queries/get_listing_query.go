package queries

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var ErrGetListingQueryIsNotConstructed = errors.New(
	"GetListingQuery must be created via NewGetListingQuery constructor",
)

// GetListingQuery retrieves one listing by its identifier, whichever of the
// three listing tables it lives in.
type GetListingQuery struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetListingQuery creates a single listing lookup.
func NewGetListingQuery(listingID kernel.UUID) (GetListingQuery, error) {
	if err := listingID.Validate(); err != nil {
		return GetListingQuery{}, err
	}

	return GetListingQuery{listingID: listingID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetListingQuery) Validate() error {
	return q.guard.Validate(ErrGetListingQueryIsNotConstructed)
}
