package commands

import (
	"errors"
	"strings"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrSendMessageCommandIsNotConstructed = errors.New(
	"SendMessageCommand must be created via NewSendMessageCommand constructor",
)

// SendMessageCommand represents a request to post a message into an existing
// conversation. The sender must be one of its participants.
type SendMessageCommand struct { //nolint:recvcheck //using for validation
	messageID      kernel.UUID
	conversationID kernel.UUID
	senderID       kernel.UUID
	body           string

	guard guard.ConstructorGuard
}

// NewSendMessageCommand creates a command to send a message.
func NewSendMessageCommand(messageID, conversationID, senderID kernel.UUID, body string) (SendMessageCommand, error) {
	cmd := SendMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		messageID.Validate(),
		conversationID.Validate(),
		senderID.Validate(),
	); err != nil {
		return SendMessageCommand{}, err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return SendMessageCommand{}, errs.NewValueIsRequiredError("body")
	}

	cmd.messageID = messageID
	cmd.conversationID = conversationID
	cmd.senderID = senderID
	cmd.body = body
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendMessageCommandIsNotConstructed)
}

// MessageID returns the identifier for the new message.
func (c SendMessageCommand) MessageID() kernel.UUID {
	return c.messageID
}

// ConversationID returns the thread the message belongs to.
func (c SendMessageCommand) ConversationID() kernel.UUID {
	return c.conversationID
}

// SenderID returns the posting user.
func (c SendMessageCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Body returns the message text.
func (c SendMessageCommand) Body() string {
	return c.body
}
