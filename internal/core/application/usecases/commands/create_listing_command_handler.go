package commands

import (
	"context"

	"farmmarket/internal/core/domain/model/listing"
)

// CreateListingCommandHandler handles the business logic for publishing a
// listing. The command's detail block decides which listing variant is built.
type CreateListingCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewCreateListingCommandHandler creates a handler for listing publication.
func NewCreateListingCommandHandler(uowFactory ListingUoWFactory) CreateListingCommandHandler {
	return CreateListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create listing command.
// Builds the matching listing variant and persists it transactionally.
func (h *CreateListingCommandHandler) Handle(ctx context.Context, cmd CreateListingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.buildListing(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ListingRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateListingCommandHandler) buildListing(cmd CreateListingCommand) (*listing.Listing, error) {
	switch cmd.Type() {
	case listing.TypeCrop:
		return listing.NewCropListing(
			cmd.ListingID(), cmd.OwnerID(), cmd.Title(), cmd.Description(),
			cmd.Price(), cmd.Location(), cmd.Images(), *cmd.Quantity(), *cmd.Crop(),
		)
	case listing.TypeLivestock:
		return listing.NewLivestockListing(
			cmd.ListingID(), cmd.OwnerID(), cmd.Title(), cmd.Description(),
			cmd.Price(), cmd.Location(), cmd.Images(), *cmd.Livestock(),
		)
	default:
		return listing.NewLandListing(
			cmd.ListingID(), cmd.OwnerID(), cmd.Title(), cmd.Description(),
			cmd.Price(), cmd.Location(), cmd.Images(), *cmd.Land(),
		)
	}
}
