package commands

import (
	"context"
	"time"
)

// ExpirePendingOrdersCommandHandler handles the business logic for expiring
// stale enquiries. Pending orders hold no stock, so expiry cancels the order
// without touching the listing.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory MarketUoWFactory
}

// NewExpirePendingOrdersCommandHandler creates a handler for order expiry.
func NewExpirePendingOrdersCommandHandler(uowFactory MarketUoWFactory) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry command. Returns the number of orders cancelled.
func (h *ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-cmd.MaxAge())

	stale, err := orderRepo.GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		if err = aggregate.Cancel(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
