package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and the email must not already be registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its registered email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
