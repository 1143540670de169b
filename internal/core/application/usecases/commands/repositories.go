// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"farmmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ListingRepoFactory provides access to the listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ConversationRepoFactory provides access to the conversation repository within a transaction.
	ConversationRepoFactory interface {
		ConversationRepository() ports.ConversationRepository
	}

	// ListingUoW manages transactions for listing-only operations.
	ListingUoW interface {
		TxManager
		ListingRepoFactory
	}

	// ListingUoWFactory creates new listing unit of work instances.
	ListingUoWFactory interface {
		Create() ListingUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// ConversationUoW manages transactions for messaging operations.
	ConversationUoW interface {
		TxManager
		ConversationRepoFactory
	}

	// ConversationUoWFactory creates new conversation unit of work instances.
	ConversationUoWFactory interface {
		Create() ConversationUoW
	}

	// MarketUoW manages transactions spanning orders and the listings they
	// reference. The order workflow mutates both aggregates and must persist
	// them in one transaction so stock and status never diverge. Placement
	// additionally reads the buyer and seller accounts to verify they exist
	// and carry the right roles.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   listingRepo := uow.ListingRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	MarketUoW interface {
		TxManager
		ListingRepoFactory
		OrderRepoFactory
		UserRepoFactory
	}

	// MarketUoWFactory creates new unit of work instances for cross-aggregate operations.
	MarketUoWFactory interface {
		Create() MarketUoW
	}
)
