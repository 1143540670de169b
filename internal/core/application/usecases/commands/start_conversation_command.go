package commands

import (
	"errors"
	"strings"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrStartConversationCommandIsNotConstructed = errors.New(
	"StartConversationCommand must be created via NewStartConversationCommand constructor",
)

// StartConversationCommand represents a request to open (or reuse) a thread
// between two users, optionally about a listing, and send its first message.
type StartConversationCommand struct { //nolint:recvcheck //using for validation
	conversationID kernel.UUID
	messageID      kernel.UUID
	initiatorID    kernel.UUID
	recipientID    kernel.UUID
	listingID      *kernel.UUID
	body           string

	guard guard.ConstructorGuard
}

// NewStartConversationCommand creates a command to start a conversation.
// The conversation and message identifiers are used only when no thread
// between the pair exists yet.
func NewStartConversationCommand(
	conversationID, messageID, initiatorID, recipientID kernel.UUID,
	listingID *kernel.UUID,
	body string,
) (StartConversationCommand, error) {
	cmd := StartConversationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		conversationID.Validate(),
		messageID.Validate(),
		initiatorID.Validate(),
		recipientID.Validate(),
	); err != nil {
		return StartConversationCommand{}, err
	}

	if listingID != nil {
		if err := listingID.Validate(); err != nil {
			return StartConversationCommand{}, err
		}
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return StartConversationCommand{}, errs.NewValueIsRequiredError("body")
	}

	cmd.conversationID = conversationID
	cmd.messageID = messageID
	cmd.initiatorID = initiatorID
	cmd.recipientID = recipientID
	cmd.listingID = listingID
	cmd.body = body
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartConversationCommand) Validate() error {
	return c.guard.Validate(ErrStartConversationCommandIsNotConstructed)
}

// ConversationID returns the identifier for the thread, if newly created.
func (c StartConversationCommand) ConversationID() kernel.UUID {
	return c.conversationID
}

// MessageID returns the identifier for the first message.
func (c StartConversationCommand) MessageID() kernel.UUID {
	return c.messageID
}

// InitiatorID returns the user opening the thread.
func (c StartConversationCommand) InitiatorID() kernel.UUID {
	return c.initiatorID
}

// RecipientID returns the other participant.
func (c StartConversationCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// ListingID returns the listing the thread is about, or nil.
func (c StartConversationCommand) ListingID() *kernel.UUID {
	return c.listingID
}

// Body returns the first message text.
func (c StartConversationCommand) Body() string {
	return c.body
}
