package commands

import (
	"context"

	"farmmarket/internal/pkg/errs"
)

// UpdateListingCommandHandler handles the business logic for listing updates.
// Only the owner may change a listing; status changes go through the
// aggregate's transition rules (a sold listing cannot be reopened).
type UpdateListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewUpdateListingCommandHandler creates a handler for listing updates.
func NewUpdateListingCommandHandler(uowFactory ListingUoWFactory) UpdateListingCommandHandler {
	return UpdateListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update listing command.
func (h *UpdateListingCommandHandler) Handle(ctx context.Context, cmd UpdateListingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	listingRepo := uow.ListingRepository()
	aggregate, err := listingRepo.Get(ctx, cmd.ListingID())
	if err != nil {
		return err
	}

	if !aggregate.IsOwnedBy(cmd.ActorID()) {
		return errs.NewNotAuthorizedError(cmd.ActorID().String(), "update this listing")
	}

	if cmd.Price() != nil {
		if err = aggregate.ChangePrice(*cmd.Price()); err != nil {
			return err
		}
	}
	if cmd.Description() != nil {
		aggregate.ChangeDescription(*cmd.Description())
	}
	if cmd.Images() != nil {
		aggregate.ChangeImages(cmd.Images())
	}
	if cmd.Status() != nil {
		if err = aggregate.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	if err = listingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
