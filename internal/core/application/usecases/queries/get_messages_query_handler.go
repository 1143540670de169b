package queries

import (
	"context"
	"database/sql"
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMessagesQueryHandler retrieves conversation messages for a participant.
type GetMessagesQueryHandler struct {
	db *gorm.DB
}

// NewGetMessagesQueryHandler creates a handler for message listing queries.
func NewGetMessagesQueryHandler(db *gorm.DB) GetMessagesQueryHandler {
	return GetMessagesQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound for a missing
// conversation and NotAuthorized when the reader is not a participant.
func (h GetMessagesQueryHandler) Handle(
	ctx context.Context,
	query GetMessagesQuery,
) ([]GetMessagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var participantA, participantB string
	row := h.db.WithContext(ctx).Raw(`
		SELECT participant_a, participant_b
		FROM conversations
		WHERE id = ?
	`, query.conversationID.String()).Row()
	if err := row.Scan(&participantA, &participantB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("conversationID", query.conversationID)
		}
		return nil, err
	}

	reader := query.readerID.String()
	if reader != participantA && reader != participantB {
		return nil, errs.NewNotAuthorizedError(reader, "read this conversation")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender_id,
			body,
			sent_at,
			is_read
		FROM messages
		WHERE conversation_id = ?
		ORDER BY sent_at ASC
	`, query.conversationID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]GetMessagesQueryResponse, 0)
	for rows.Next() {
		var resp GetMessagesQueryResponse
		var id, senderID uuid.UUID

		err = rows.Scan(&id, &senderID, &resp.Body, &resp.SentAt, &resp.Read)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
			return nil, err
		}

		messages = append(messages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
