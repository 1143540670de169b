package commands

import (
	"context"
)

// MarkConversationReadCommandHandler handles the business logic for clearing
// unread state. The aggregate counter and the per-message read flags are
// updated in the same transaction.
type MarkConversationReadCommandHandler struct {
	uowFactory ConversationUoWFactory
}

// NewMarkConversationReadCommandHandler creates a handler for read receipts.
func NewMarkConversationReadCommandHandler(uowFactory ConversationUoWFactory) MarkConversationReadCommandHandler {
	return MarkConversationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark read command.
func (h *MarkConversationReadCommandHandler) Handle(ctx context.Context, cmd MarkConversationReadCommand) error {
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

	if err = thread.MarkRead(cmd.ReaderID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, thread); err != nil {
		return err
	}

	if err = repo.MarkMessagesRead(ctx, cmd.ConversationID(), cmd.ReaderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
