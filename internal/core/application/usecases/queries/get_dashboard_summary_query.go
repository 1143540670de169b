package queries

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
	"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
)

// GetDashboardSummaryQuery aggregates a user's marketplace activity: listing
// counts per status, order counts per status on the selling side, revenue
// from completed sales, and unread messages.
//
// Example:
//
//	query, err := NewGetDashboardSummaryQuery(userID)
//	if err != nil {
//	    return err
//	}
//
//	summary, err := NewGetDashboardSummaryQueryHandler(db).Handle(ctx, query)
//	fmt.Printf("revenue so far: %.2f\n", summary.CompletedRevenue)
type GetDashboardSummaryQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDashboardSummaryQuery creates a dashboard query for the user.
func NewGetDashboardSummaryQuery(userID kernel.UUID) (GetDashboardSummaryQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetDashboardSummaryQuery{}, err
	}

	return GetDashboardSummaryQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// GetDashboardSummaryQueryResponse is the aggregated dashboard view.
// Map keys are the wire names of the respective statuses; statuses with no
// rows are absent.
type GetDashboardSummaryQueryResponse struct {
	TotalListings    int
	ListingsByStatus map[string]int
	TotalOrders      int
	OrdersByStatus   map[string]int
	CompletedRevenue float64
	UnreadMessages   int
}
