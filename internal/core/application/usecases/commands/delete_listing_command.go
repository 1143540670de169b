package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var ErrDeleteListingCommandIsNotConstructed = errors.New(
	"DeleteListingCommand must be created via NewDeleteListingCommand constructor",
)

// DeleteListingCommand represents a request to remove a listing.
type DeleteListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteListingCommand creates a command to delete a listing.
func NewDeleteListingCommand(listingID, actorID kernel.UUID) (DeleteListingCommand, error) {
	cmd := DeleteListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listingID.Validate(),
		actorID.Validate(),
	); err != nil {
		return DeleteListingCommand{}, err
	}

	cmd.listingID = listingID
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteListingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteListingCommandIsNotConstructed)
}

// ListingID returns the listing being deleted.
func (c DeleteListingCommand) ListingID() kernel.UUID {
	return c.listingID
}

// ActorID returns the user requesting the deletion.
func (c DeleteListingCommand) ActorID() kernel.UUID {
	return c.actorID
}
