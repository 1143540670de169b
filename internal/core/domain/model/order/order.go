package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrSelfOrder is returned when a buyer attempts to order from their own
	// listing.
	ErrSelfOrder = errors.New("buyer and seller must be different users")
)

// Order represents a buyer's request to purchase from a specific listing,
// subject to seller approval. It is the aggregate root the order workflow
// engine drives through the pending/accepted/terminal lifecycle.
//
// Order follows these invariants:
//   - Buyer and seller are distinct, valid user references
//   - Crop and livestock orders carry a positive quantity; land orders none
//   - respondedAt is set when the seller first decides, completedAt on completion
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	buyerID     kernel.UUID
	sellerID    kernel.UUID
	listingID   kernel.UUID
	listingType listing.Type
	quantity    float64
	totalPrice  kernel.Price
	message     string
	contact     BuyerContact
	status      Status
	createdAt   time.Time
	respondedAt *time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewOrder creates a pending Order with validation. This is the only way to
// create a valid order, ensuring all business invariants hold.
//
// For crop and livestock orders the quantity must be positive (livestock
// arithmetic later requires whole animals; the listing enforces that at
// accept-time). For land orders the quantity is ignored and stored as zero.
func NewOrder(
	id, buyerID, sellerID, listingID kernel.UUID,
	listingType listing.Type,
	quantity float64,
	totalPrice kernel.Price,
	message string,
	contact BuyerContact,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(buyerID, sellerID),
		o.setListing(listingID, listingType),
		o.setTotalPrice(totalPrice),
		o.setContact(contact),
	); err != nil {
		return nil, err
	}

	if err := o.setQuantity(quantity); err != nil {
		return nil, err
	}

	o.message = strings.TrimSpace(message)
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, re-running all
// invariant checks and restoring the lifecycle timestamps.
func RestoreOrder(
	id, buyerID, sellerID, listingID kernel.UUID,
	listingType listing.Type,
	quantity float64,
	totalPrice kernel.Price,
	message string,
	contact BuyerContact,
	status Status,
	createdAt time.Time,
	respondedAt, completedAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, buyerID, sellerID, listingID, listingType, quantity, totalPrice, message, contact)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.createdAt = createdAt
	o.respondedAt = respondedAt
	o.completedAt = completedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the purchasing user's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the identifier of the farmer who must decide the order.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// ListingID returns the identifier of the listing being purchased.
func (o *Order) ListingID() kernel.UUID {
	return o.listingID
}

// ListingType returns the variant of the referenced listing.
func (o *Order) ListingType() listing.Type {
	return o.listingType
}

// Quantity returns the requested amount; zero for land orders.
func (o *Order) Quantity() float64 {
	return o.quantity
}

// TotalPrice returns the agreed total.
func (o *Order) TotalPrice() kernel.Price {
	return o.totalPrice
}

// Message returns the buyer's note to the seller, which may be empty.
func (o *Order) Message() string {
	return o.message
}

// Contact returns the buyer's contact card.
func (o *Order) Contact() BuyerContact {
	return o.contact
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// RespondedAt returns when the seller first decided the order, or nil.
func (o *Order) RespondedAt() *time.Time {
	return o.respondedAt
}

// CompletedAt returns when the order was completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// IsSeller reports whether the given user is the order's seller, the only
// party allowed to transition it.
func (o *Order) IsSeller(userID kernel.UUID) bool {
	return o.sellerID.IsEqual(userID)
}

// Accept marks the pending order as accepted and records the decision time.
// The caller is responsible for deducting the listing inventory in the same
// transaction.
func (o *Order) Accept() error {
	newStatus, err := o.status.TransitionTo(Accepted)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touchRespondedAt()
	return nil
}

// Reject marks the order as rejected. Valid from pending (no inventory was
// deducted) and from accepted (the caller must restore inventory).
func (o *Order) Reject() error {
	newStatus, err := o.status.TransitionTo(Rejected)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touchRespondedAt()
	return nil
}

// Cancel marks the order as cancelled. Valid from pending and from accepted
// (the caller must restore inventory).
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the accepted order as fulfilled and records the completion
// time. The listing is not touched; its inventory was deducted at accept-time.
func (o *Order) Complete() error {
	newStatus, err := o.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now().UTC()
	o.completedAt = &now
	return nil
}

// touchRespondedAt records the first seller decision; later transitions keep
// the original timestamp.
func (o *Order) touchRespondedAt() {
	if o.respondedAt == nil {
		now := time.Now().UTC()
		o.respondedAt = &now
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(buyerID, sellerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerID", err)
	}
	if err := sellerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerID", err)
	}
	if buyerID.IsEqual(sellerID) {
		return ErrSelfOrder
	}

	o.buyerID = buyerID
	o.sellerID = sellerID
	return nil
}

func (o *Order) setListing(listingID kernel.UUID, listingType listing.Type) error {
	if err := listingID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("listingID", err)
	}
	if err := listingType.Validate(); err != nil {
		return err
	}

	o.listingID = listingID
	o.listingType = listingType
	return nil
}

// setQuantity runs after setListing so it can depend on the listing type.
func (o *Order) setQuantity(quantity float64) error {
	if o.listingType == listing.TypeLand {
		o.quantity = 0
		return nil
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", quantity))
	}

	o.quantity = quantity
	return nil
}

func (o *Order) setTotalPrice(totalPrice kernel.Price) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setContact(contact BuyerContact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	o.contact = contact
	return nil
}
