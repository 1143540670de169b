package queries

import (
	"context"

	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardSummaryQueryHandler aggregates marketplace activity for one
// user. Listing counts span all three listing tables; order counts and
// revenue cover the selling side only, matching what a farmer manages.
type GetDashboardSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardSummaryQueryHandler creates a handler for dashboard queries.
func NewGetDashboardSummaryQueryHandler(db *gorm.DB) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{db: db}
}

// Handle executes the aggregation.
func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (GetDashboardSummaryQueryResponse, error) {
	var resp GetDashboardSummaryQueryResponse
	if err := query.Validate(); err != nil {
		return resp, err
	}

	resp.ListingsByStatus = make(map[string]int)
	resp.OrdersByStatus = make(map[string]int)

	userID := query.userID.String()

	if err := h.countListings(ctx, userID, &resp); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}
	if err := h.countOrders(ctx, userID, &resp); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}
	if err := h.sumRevenue(ctx, userID, &resp); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}
	if err := h.countUnread(ctx, userID, &resp); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	return resp, nil
}

func (h GetDashboardSummaryQueryHandler) countListings(
	ctx context.Context,
	userID string,
	resp *GetDashboardSummaryQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM (
			SELECT status FROM crops WHERE owner_id = ?
			UNION ALL
			SELECT status FROM livestocks WHERE owner_id = ?
			UNION ALL
			SELECT status FROM lands WHERE owner_id = ?
		) AS all_listings
		GROUP BY status
	`, userID, userID, userID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return err
		}
		resp.ListingsByStatus[listing.Status(status).String()] = count
		resp.TotalListings += count
	}

	return rows.Err()
}

func (h GetDashboardSummaryQueryHandler) countOrders(
	ctx context.Context,
	userID string,
	resp *GetDashboardSummaryQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		WHERE seller_id = ?
		GROUP BY status
	`, userID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return err
		}
		resp.OrdersByStatus[order.Status(status).String()] = count
		resp.TotalOrders += count
	}

	return rows.Err()
}

func (h GetDashboardSummaryQueryHandler) sumRevenue(
	ctx context.Context,
	userID string,
	resp *GetDashboardSummaryQueryResponse,
) error {
	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_price), 0)
		FROM orders
		WHERE seller_id = ? AND status = ?
	`, userID, int(order.Completed)).Row()

	return row.Scan(&resp.CompletedRevenue)
}

func (h GetDashboardSummaryQueryHandler) countUnread(
	ctx context.Context,
	userID string,
	resp *GetDashboardSummaryQueryResponse,
) error {
	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN participant_a = ? THEN unread_a ELSE unread_b END), 0)
		FROM conversations
		WHERE participant_a = ? OR participant_b = ?
	`, userID, userID, userID).Row()

	return row.Scan(&resp.UnreadMessages)
}
