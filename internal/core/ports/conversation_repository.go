package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/conversation"
	"farmmarket/internal/core/domain/model/kernel"
)

// ConversationRepository defines the persistence contract for conversation
// aggregates and their messages.
type ConversationRepository interface {
	// Add persists a new conversation aggregate to storage.
	Add(ctx context.Context, aggregate *conversation.Conversation) error

	// Update persists changes to an existing conversation aggregate.
	Update(ctx context.Context, aggregate *conversation.Conversation) error

	// Get retrieves a conversation aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*conversation.Conversation, error)

	// GetByParticipants retrieves the conversation between two users about an
	// optional listing. The participant order does not matter. Returns
	// errs.ObjectNotFoundError when no such thread exists yet.
	GetByParticipants(ctx context.Context, first, second kernel.UUID, listingID *kernel.UUID) (*conversation.Conversation, error)

	// AddMessage persists a message belonging to a conversation.
	AddMessage(ctx context.Context, message *conversation.Message) error

	// GetMessages retrieves all messages of a conversation, oldest first.
	GetMessages(ctx context.Context, conversationID kernel.UUID) ([]*conversation.Message, error)

	// MarkMessagesRead marks every message in the conversation that was not
	// sent by readerID as read.
	MarkMessagesRead(ctx context.Context, conversationID, readerID kernel.UUID) error
}
