package queries

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConversationsQueryHandler retrieves a user's message threads.
// The unread counter and the "other participant" column are resolved per
// requester, since threads store their participants in canonical order.
type GetConversationsQueryHandler struct {
	db *gorm.DB
}

// NewGetConversationsQueryHandler creates a handler for conversation queries.
func NewGetConversationsQueryHandler(db *gorm.DB) GetConversationsQueryHandler {
	return GetConversationsQueryHandler{db: db}
}

// Handle executes the query. Threads come back ordered by last activity.
func (h GetConversationsQueryHandler) Handle(
	ctx context.Context,
	query GetConversationsQuery,
) ([]GetConversationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	userID := query.userID.String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			CASE WHEN participant_a = ? THEN participant_b ELSE participant_a END AS other_participant,
			listing_id,
			last_message,
			last_message_at,
			CASE WHEN participant_a = ? THEN unread_a ELSE unread_b END AS unread,
			created_at
		FROM conversations
		WHERE participant_a = ? OR participant_b = ?
		ORDER BY COALESCE(last_message_at, created_at) DESC
	`, userID, userID, userID, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	threads := make([]GetConversationsQueryResponse, 0)
	for rows.Next() {
		var resp GetConversationsQueryResponse
		var id, other uuid.UUID
		var listingID *uuid.UUID

		err = rows.Scan(
			&id, &other, &listingID,
			&resp.LastMessage, &resp.LastMessageAt,
			&resp.Unread, &resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OtherParticipant, err = kernel.UUIDFromBytes(other[:]); err != nil {
			return nil, err
		}
		if listingID != nil {
			lid, idErr := kernel.UUIDFromBytes((*listingID)[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.ListingID = &lid
		}

		threads = append(threads, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return threads, nil
}
