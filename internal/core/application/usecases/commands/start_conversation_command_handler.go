package commands

import (
	"context"
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/conversation"
	"farmmarket/internal/pkg/errs"
)

// StartConversationCommandHandler handles the business logic for opening a
// thread. If the pair already has a conversation about the same listing, the
// first message lands there instead of creating a duplicate thread.
type StartConversationCommandHandler struct {
	uowFactory ConversationUoWFactory
}

// NewStartConversationCommandHandler creates a handler for starting conversations.
func NewStartConversationCommandHandler(uowFactory ConversationUoWFactory) StartConversationCommandHandler {
	return StartConversationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start conversation command.
func (h *StartConversationCommandHandler) Handle(ctx context.Context, cmd StartConversationCommand) error {
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

	thread, err := repo.GetByParticipants(ctx, cmd.InitiatorID(), cmd.RecipientID(), cmd.ListingID())
	created := false
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		thread, err = conversation.NewConversation(
			cmd.ConversationID(), cmd.InitiatorID(), cmd.RecipientID(), cmd.ListingID())
		if err != nil {
			return err
		}
		created = true
	case err != nil:
		return err
	}

	if err = thread.RecordMessage(cmd.InitiatorID(), cmd.Body(), time.Now().UTC()); err != nil {
		return err
	}

	message, err := conversation.NewMessage(cmd.MessageID(), thread.ID(), cmd.InitiatorID(), cmd.Body())
	if err != nil {
		return err
	}

	if created {
		err = repo.Add(ctx, thread)
	} else {
		err = repo.Update(ctx, thread)
	}
	if err != nil {
		return err
	}

	if err = repo.AddMessage(ctx, message); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
