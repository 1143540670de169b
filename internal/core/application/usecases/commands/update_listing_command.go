package commands

import (
	"errors"
	"strings"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrUpdateListingCommandIsNotConstructed = errors.New(
		"UpdateListingCommand must be created via NewUpdateListingCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one field must change")
)

// UpdateListingCommand represents a request to change a listing's mutable
// fields. Nil fields are left unchanged; at least one must be set.
type UpdateListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.UUID
	actorID   kernel.UUID

	price       *kernel.Price
	description *string
	images      []string
	status      *listing.Status

	guard guard.ConstructorGuard
}

// NewUpdateListingCommand creates a command to update a listing.
func NewUpdateListingCommand(
	listingID, actorID kernel.UUID,
	price *kernel.Price,
	description *string,
	images []string,
	status *listing.Status,
) (UpdateListingCommand, error) {
	cmd := UpdateListingCommand{
		images: images,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setActorID(actorID),
		cmd.setPrice(price),
		cmd.setStatus(status),
	); err != nil {
		return UpdateListingCommand{}, err
	}

	if description != nil {
		trimmed := strings.TrimSpace(*description)
		cmd.description = &trimmed
	}

	if cmd.price == nil && cmd.description == nil && cmd.images == nil && cmd.status == nil {
		return UpdateListingCommand{}, ErrNothingToUpdate
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateListingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateListingCommandIsNotConstructed)
}

// ListingID returns the listing being updated.
func (c UpdateListingCommand) ListingID() kernel.UUID {
	return c.listingID
}

// ActorID returns the user requesting the change.
func (c UpdateListingCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Price returns the new price, or nil to keep the current one.
func (c UpdateListingCommand) Price() *kernel.Price {
	return c.price
}

// Description returns the new description, or nil to keep the current one.
func (c UpdateListingCommand) Description() *string {
	return c.description
}

// Images returns the replacement image set, or nil to keep the current one.
func (c UpdateListingCommand) Images() []string {
	return c.images
}

// Status returns the new status, or nil to keep the current one.
func (c UpdateListingCommand) Status() *listing.Status {
	return c.status
}

func (c *UpdateListingCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}

	c.listingID = listingID
	return nil
}

func (c *UpdateListingCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("actorID")
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateListingCommand) setPrice(price *kernel.Price) error {
	if price == nil {
		return nil
	}
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *UpdateListingCommand) setStatus(status *listing.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
