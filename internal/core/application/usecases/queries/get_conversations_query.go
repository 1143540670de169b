package queries

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var ErrGetConversationsQueryIsNotConstructed = errors.New(
	"GetConversationsQuery must be created via NewGetConversationsQuery constructor",
)

// GetConversationsQuery retrieves a user's conversation threads ordered by
// last activity, most recent first.
//
// Example:
//
//	query, err := NewGetConversationsQuery(userID)
//	if err != nil {
//	    return err
//	}
//
//	threads, err := NewGetConversationsQueryHandler(db).Handle(ctx, query)
type GetConversationsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetConversationsQuery creates a conversation listing query for the user.
func NewGetConversationsQuery(userID kernel.UUID) (GetConversationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetConversationsQuery{}, err
	}

	return GetConversationsQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConversationsQuery) Validate() error {
	return q.guard.Validate(ErrGetConversationsQueryIsNotConstructed)
}

// GetConversationsQueryResponse is one conversation thread in the result.
// Unread is the number of messages the requesting user has not read yet.
type GetConversationsQueryResponse struct {
	ID               kernel.UUID
	OtherParticipant kernel.UUID
	ListingID        *kernel.UUID
	LastMessage      string
	LastMessageAt    *time.Time
	Unread           int
	CreatedAt        time.Time
}
