// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for listing aggregates.
// All three listing variants (crop, livestock, land) go through the same
// contract; the adapter decides which table each one lands in.
type ListingRepository interface {
	// Add persists a new listing aggregate to storage.
	// The listing must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *listing.Listing) error

	// Update persists changes to an existing listing aggregate.
	// The listing must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *listing.Listing) error

	// Delete removes a listing from storage. Callers enforce the rule that a
	// listing referenced by non-terminal orders may not be deleted.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a listing aggregate by its unique identifier, whichever
	// variant it is.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// GetAllByOwner retrieves every listing owned by the given user.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*listing.Listing, error)
}
