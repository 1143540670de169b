package queries

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// OrderSide selects which side of the trade the user is queried on.
type OrderSide int

const (
	// SideAny returns orders where the user is buyer or seller.
	SideAny OrderSide = iota

	// SideBuyer returns orders the user placed.
	SideBuyer

	// SideSeller returns orders placed against the user's listings.
	SideSeller
)

// GetOrdersQuery retrieves a user's orders, newest first, paginated.
//
// Example:
//
//	query, err := NewGetOrdersQuery(userID, SideSeller, nil, 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	side   OrderSide
	status *order.Status
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query for the given user.
// Page defaults to 1 and limit to 20, capped at 100.
func NewGetOrdersQuery(
	userID kernel.UUID,
	side OrderSide,
	status *order.Status,
	page, limit int,
) (GetOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if side < SideAny || side > SideSeller {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("side")
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if page < 0 || limit < 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return GetOrdersQuery{
		userID: userID,
		side:   side,
		status: status,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one order row in the result.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	BuyerID      kernel.UUID
	SellerID     kernel.UUID
	ListingID    kernel.UUID
	ListingType  string
	Quantity     float64
	TotalPrice   float64
	Message      string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Status       string
	CreatedAt    time.Time
	RespondedAt  *time.Time
	CompletedAt  *time.Time
}
