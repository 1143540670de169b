package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/guard"
)

var ErrMarkConversationReadCommandIsNotConstructed = errors.New(
	"MarkConversationReadCommand must be created via NewMarkConversationReadCommand constructor",
)

// MarkConversationReadCommand represents a request to clear a participant's
// unread counter and mark the messages addressed to them as read.
type MarkConversationReadCommand struct { //nolint:recvcheck //using for validation
	conversationID kernel.UUID
	readerID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkConversationReadCommand creates a command to mark a thread read.
func NewMarkConversationReadCommand(conversationID, readerID kernel.UUID) (MarkConversationReadCommand, error) {
	cmd := MarkConversationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		conversationID.Validate(),
		readerID.Validate(),
	); err != nil {
		return MarkConversationReadCommand{}, err
	}

	cmd.conversationID = conversationID
	cmd.readerID = readerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkConversationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkConversationReadCommandIsNotConstructed)
}

// ConversationID returns the thread being marked read.
func (c MarkConversationReadCommand) ConversationID() kernel.UUID {
	return c.conversationID
}

// ReaderID returns the participant whose unread counter is cleared.
func (c MarkConversationReadCommand) ReaderID() kernel.UUID {
	return c.readerID
}
