package commands

import (
	"context"

	"farmmarket/internal/core/domain/services"
)

// TransitionOrderCommandHandler handles the business logic for order status
// transitions. The order and its listing are loaded, mutated and persisted
// inside one transaction: an accept that fails the stock check rolls back
// entirely, so the order stays pending and the listing untouched.
//
// Example:
//
//	cmd, _ := NewTransitionOrderCommand(orderID, sellerID, order.Accepted)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ErrInsufficientStock: listing no longer covers the order
//	    return err
//	}
type TransitionOrderCommandHandler struct {
	uowFactory MarketUoWFactory
	processor  services.OrderProcessor
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(
	uowFactory MarketUoWFactory,
	processor services.OrderProcessor,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		processor:  processor,
	}
}

// Handle processes the order transition command.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	listingRepo := uow.ListingRepository()
	lst, err := listingRepo.Get(ctx, aggregate.ListingID())
	if err != nil {
		return err
	}

	if err = h.processor.Transition(cmd.ActorID(), aggregate, lst, cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = listingRepo.Update(ctx, lst); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
