package queries

import (
	"context"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves a user's orders from the database.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(userID, SideBuyer, nil, 1, 20)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "buyer_id = ? OR seller_id = ?"
	args := []any{query.userID.String(), query.userID.String()}
	switch query.side {
	case SideBuyer:
		where = "buyer_id = ?"
		args = []any{query.userID.String()}
	case SideSeller:
		where = "seller_id = ?"
		args = []any{query.userID.String()}
	case SideAny:
	}

	if query.status != nil {
		where = "(" + where + ") AND status = ?"
		args = append(args, int(*query.status))
	}

	args = append(args, query.limit, (query.page-1)*query.limit)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			id,
			buyer_id,
			seller_id,
			listing_id,
			listing_type,
			quantity,
			total_price,
			message,
			contact_name,
			contact_email,
			contact_phone,
			status,
			created_at,
			responded_at,
			completed_at
		FROM orders
		WHERE %s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id, buyerID, sellerID, listingID uuid.UUID
		var listingType, status int

		err = rows.Scan(
			&id, &buyerID, &sellerID, &listingID,
			&listingType,
			&resp.Quantity, &resp.TotalPrice, &resp.Message,
			&resp.ContactName, &resp.ContactEmail, &resp.ContactPhone,
			&status,
			&resp.CreatedAt, &resp.RespondedAt, &resp.CompletedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
			return nil, err
		}
		if resp.ListingID, err = kernel.UUIDFromBytes(listingID[:]); err != nil {
			return nil, err
		}
		resp.ListingType = listing.Type(listingType).String()
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
