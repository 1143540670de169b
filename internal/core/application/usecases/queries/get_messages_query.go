package queries

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var ErrGetMessagesQueryIsNotConstructed = errors.New(
	"GetMessagesQuery must be created via NewGetMessagesQuery constructor",
)

// GetMessagesQuery retrieves the messages of a conversation in chronological
// order. Only a participant of the conversation may read it.
//
// Example:
//
//	query, err := NewGetMessagesQuery(conversationID, readerID)
//	if err != nil {
//	    return err
//	}
//
//	messages, err := NewGetMessagesQueryHandler(db).Handle(ctx, query)
type GetMessagesQuery struct { //nolint:recvcheck //using for validation
	conversationID kernel.UUID
	readerID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMessagesQuery creates a message listing query.
func NewGetMessagesQuery(conversationID, readerID kernel.UUID) (GetMessagesQuery, error) {
	if err := errors.Join(conversationID.Validate(), readerID.Validate()); err != nil {
		return GetMessagesQuery{}, err
	}

	return GetMessagesQuery{
		conversationID: conversationID,
		readerID:       readerID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMessagesQuery) Validate() error {
	return q.guard.Validate(ErrGetMessagesQueryIsNotConstructed)
}

// GetMessagesQueryResponse is one message in the conversation.
type GetMessagesQueryResponse struct {
	ID       kernel.UUID
	SenderID kernel.UUID
	Body     string
	SentAt   time.Time
	Read     bool
}
