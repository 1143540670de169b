package commands

import (
	"context"
	"errors"

	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/services"
	"farmmarket/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// The listing, buyer and seller are loaded in the same transaction so the
// availability and role checks and the order insert see one consistent
// state. Buyers buy, farmers sell; an account on the wrong side is rejected.
type CreateOrderCommandHandler struct {
	uowFactory MarketUoWFactory
	processor  services.OrderProcessor
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory MarketUoWFactory,
	processor services.OrderProcessor,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		processor:  processor,
	}
}

// Handle processes the order placement command.
// Placing an order never moves stock; inventory changes only when the
// seller accepts.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	lst, err := uow.ListingRepository().Get(ctx, cmd.ListingID())
	if err != nil {
		return err
	}

	if cmd.BuyerID().IsEqual(lst.OwnerID()) {
		return order.ErrSelfOrder
	}

	users := uow.UserRepository()
	buyer, err := users.Get(ctx, cmd.BuyerID())
	if err != nil {
		return err
	}
	if !buyer.IsBuyer() {
		return errs.NewValueIsInvalidErrorWithCause("buyerID",
			errors.New("account is not a buyer"))
	}

	seller, err := users.Get(ctx, lst.OwnerID())
	if err != nil {
		return err
	}
	if !seller.IsFarmer() {
		return errs.NewValueIsInvalidErrorWithCause("sellerID",
			errors.New("listing owner is not a farmer"))
	}

	aggregate, err := h.processor.Place(
		cmd.OrderID(), cmd.BuyerID(), lst,
		cmd.Quantity(), cmd.Message(), cmd.Contact(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
