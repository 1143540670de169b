package commands

import (
	"errors"
	"strings"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a buyer's request to order from a listing.
// The quantity is in the listing's unit; for land listings it is ignored.
//
// Example:
//
//	contact, _ := order.NewBuyerContact("Ravi Kumar", "ravi@example.com", "+91 98765 43210")
//	cmd, err := NewCreateOrderCommand(orderID, buyerID, listingID, 50, "need by friday", contact)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, processor)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	buyerID   kernel.UUID
	listingID kernel.UUID
	quantity  float64
	message   string
	contact   order.BuyerContact

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The quantity and self-order rules are enforced later against the listing;
// here only identifiers and the contact block are validated.
func NewCreateOrderCommand(
	orderID, buyerID, listingID kernel.UUID,
	quantity float64,
	message string,
	contact order.BuyerContact,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		quantity: quantity,
		message:  strings.TrimSpace(message),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setListingID(listingID),
		cmd.setContact(contact),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the ordering user.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ListingID returns the listing being ordered from.
func (c CreateOrderCommand) ListingID() kernel.UUID {
	return c.listingID
}

// Quantity returns the requested amount in the listing's unit.
func (c CreateOrderCommand) Quantity() float64 {
	return c.quantity
}

// Message returns the buyer's note to the seller.
func (c CreateOrderCommand) Message() string {
	return c.message
}

// Contact returns how the seller can reach the buyer.
func (c CreateOrderCommand) Contact() order.BuyerContact {
	return c.contact
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}

	c.listingID = listingID
	return nil
}

func (c *CreateOrderCommand) setContact(contact order.BuyerContact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	c.contact = contact
	return nil
}
