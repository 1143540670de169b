package services

import (
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
)

// OrderProcessor is a domain service coordinating the order lifecycle against
// the listing it targets. It owns the two rules that span both aggregates:
//
//   - stock moves only on status transitions: the seller's accept deducts
//     inventory, and reject/cancel of an accepted order restores exactly what
//     accept deducted;
//   - only the seller may drive a transition; buyers place orders but never
//     move them.
//
// The processor mutates both aggregates in memory; callers persist them
// inside a single transaction so the pair never diverges.
type OrderProcessor struct{}

// NewOrderProcessor creates a new OrderProcessor instance.
func NewOrderProcessor() OrderProcessor {
	return OrderProcessor{}
}

// Place builds a pending Order against the given listing. The listing must be
// open for orders; the total price is derived from the listing price (per
// unit for crops and livestock, the whole plot for land). No stock moves yet.
func (p OrderProcessor) Place(
	id, buyerID kernel.UUID,
	lst *listing.Listing,
	quantity float64,
	message string,
	contact order.BuyerContact,
) (*order.Order, error) {
	if err := lst.Validate(); err != nil {
		return nil, err
	}

	if !lst.IsAvailable() {
		return nil, errs.NewConflictError("listing", "not open for orders")
	}

	totalPrice, err := p.totalPrice(lst, quantity)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		id, buyerID, lst.OwnerID(), lst.ID(),
		lst.Type(), quantity, totalPrice, message, contact,
	)
}

// Transition moves the order to the target status on behalf of actorID,
// applying the matching stock movement to the listing. The listing must be
// the one the order references.
func (p OrderProcessor) Transition(
	actorID kernel.UUID,
	ord *order.Order,
	lst *listing.Listing,
	target order.Status,
) error {
	if err := ord.Validate(); err != nil {
		return err
	}
	if err := lst.Validate(); err != nil {
		return err
	}
	if !ord.ListingID().IsEqual(lst.ID()) {
		return errs.NewValueIsInvalidError("listing")
	}

	if err := p.checkAuthority(actorID, ord); err != nil {
		return err
	}

	from := ord.Status()

	switch target {
	case order.Accepted:
		if err := ord.Accept(); err != nil {
			return err
		}
		return lst.Allocate(ord.Quantity())
	case order.Rejected:
		if err := ord.Reject(); err != nil {
			return err
		}
		return p.releaseIfHeld(from, ord, lst)
	case order.Cancelled:
		if err := ord.Cancel(); err != nil {
			return err
		}
		return p.releaseIfHeld(from, ord, lst)
	case order.Completed:
		// Stock was deducted at accept time; nothing moves here.
		return ord.Complete()
	default:
		return errs.NewValueIsInvalidError("target status")
	}
}

// checkAuthority enforces that every transition is driven by the seller.
func (p OrderProcessor) checkAuthority(actorID kernel.UUID, ord *order.Order) error {
	if !ord.IsSeller(actorID) {
		return errs.NewNotAuthorizedError(actorID.String(), "respond to this order")
	}
	return nil
}

// releaseIfHeld gives inventory back when leaving Accepted. Leaving Pending
// holds no stock, so there is nothing to restore.
func (p OrderProcessor) releaseIfHeld(from order.Status, ord *order.Order, lst *listing.Listing) error {
	if from != order.Accepted {
		return nil
	}
	return lst.Release(ord.Quantity())
}

func (p OrderProcessor) totalPrice(lst *listing.Listing, quantity float64) (kernel.Price, error) {
	if lst.Type() == listing.TypeLand {
		return lst.Price(), nil
	}
	return kernel.NewPrice(lst.Price().Amount() * quantity)
}
