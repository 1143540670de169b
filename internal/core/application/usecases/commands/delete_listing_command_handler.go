package commands

import (
	"context"

	"farmmarket/internal/pkg/errs"
)

// DeleteListingCommandHandler handles the business logic for listing removal.
// A listing referenced by orders that are still open (pending or accepted)
// may not be deleted; the orders must settle first.
type DeleteListingCommandHandler struct {
	uowFactory MarketUoWFactory
}

// NewDeleteListingCommandHandler creates a handler for listing removal.
func NewDeleteListingCommandHandler(uowFactory MarketUoWFactory) DeleteListingCommandHandler {
	return DeleteListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete listing command.
func (h *DeleteListingCommandHandler) Handle(ctx context.Context, cmd DeleteListingCommand) error {
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
		return errs.NewNotAuthorizedError(cmd.ActorID().String(), "delete this listing")
	}

	active, err := uow.OrderRepository().CountActiveByListing(ctx, cmd.ListingID())
	if err != nil {
		return err
	}
	if active > 0 {
		return errs.NewConflictError("listing", "open orders still reference it")
	}

	if err = listingRepo.Delete(ctx, cmd.ListingID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
