package ports

import (
	"context"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByParticipant retrieves orders where the user is the buyer or the
	// seller, newest first.
	GetAllByParticipant(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// CountActiveByListing counts orders referencing the listing that are not
	// in a terminal status. Used to block deletion of listings with open
	// orders.
	CountActiveByListing(ctx context.Context, listingID kernel.UUID) (int64, error)

	// GetAllPendingOlderThan retrieves pending orders created before the
	// cutoff. Used by the expiry job to cancel stale enquiries.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
