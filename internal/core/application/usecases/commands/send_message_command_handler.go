package commands

import (
	"context"
	"time"

	"farmmarket/internal/core/domain/model/conversation"
)

// SendMessageCommandHandler handles the business logic for posting a message.
// The conversation aggregate enforces membership and keeps the unread counts
// and last-message preview in step with the message row.
type SendMessageCommandHandler struct {
	uowFactory ConversationUoWFactory
}

// NewSendMessageCommandHandler creates a handler for sending messages.
func NewSendMessageCommandHandler(uowFactory ConversationUoWFactory) SendMessageCommandHandler {
	return SendMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the send message command.
func (h *SendMessageCommandHandler) Handle(ctx context.Context, cmd SendMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ConversationRepository()
	thread, err := repo.Get(ctx, cmd.ConversationID())
	if err != nil {
		return err
	}

	if err = thread.RecordMessage(cmd.SenderID(), cmd.Body(), time.Now().UTC()); err != nil {
		return err
	}

	message, err := conversation.NewMessage(cmd.MessageID(), thread.ID(), cmd.SenderID(), cmd.Body())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, thread); err != nil {
		return err
	}

	if err = repo.AddMessage(ctx, message); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
