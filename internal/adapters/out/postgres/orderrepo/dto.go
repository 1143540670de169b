// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the frequent lookups: by participant, by listing, and by status
// for the expiry job.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID      uuid.UUID `gorm:"type:uuid;index"`
	SellerID     uuid.UUID `gorm:"type:uuid;index"`
	ListingID    uuid.UUID `gorm:"type:uuid;index"`
	ListingType  int
	Quantity     float64
	TotalPrice   float64
	Message      string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Status       int `gorm:"index"`
	CreatedAt    time.Time
	RespondedAt  *time.Time
	CompletedAt  *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Bytes(),
		BuyerID:      o.BuyerID().Bytes(),
		SellerID:     o.SellerID().Bytes(),
		ListingID:    o.ListingID().Bytes(),
		ListingType:  int(o.ListingType()),
		Quantity:     o.Quantity(),
		TotalPrice:   o.TotalPrice().Amount(),
		Message:      o.Message(),
		ContactName:  o.Contact().Name(),
		ContactEmail: o.Contact().Email(),
		ContactPhone: o.Contact().Phone(),
		Status:       int(o.Status()),
		CreatedAt:    o.CreatedAt(),
		RespondedAt:  o.RespondedAt(),
		CompletedAt:  o.CompletedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewPrice(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	contact, err := order.NewBuyerContact(dto.ContactName, dto.ContactEmail, dto.ContactPhone)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, buyerID, sellerID, listingID,
		listing.Type(dto.ListingType),
		dto.Quantity, totalPrice, dto.Message, contact,
		order.Status(dto.Status),
		dto.CreatedAt, dto.RespondedAt, dto.CompletedAt,
	)
}
