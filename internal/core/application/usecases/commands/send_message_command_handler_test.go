package commands_test

import (
	"testing"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/conversation"
	"farmmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendMessageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	buyer := kernel.NewUUID()
	farmer := kernel.NewUUID()
	thread, err := conversation.NewConversation(kernel.NewUUID(), buyer, farmer, nil)
	require.NoError(t, err)

	cmd, err := commands.NewSendMessageCommand(
		kernel.NewUUID(), thread.ID(), buyer, "is the wheat still available?")
	require.NoError(t, err)

	repo := new(MockConversationRepository)
	uow := new(MockConversationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConversationRepository").Return(repo).Once(),
		repo.On("Get", ctx, thread.ID()).Return(thread, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*conversation.Conversation")).Return(nil).Once(),
		repo.On("AddMessage", ctx, mock.AnythingOfType("*conversation.Message")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConversationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendMessageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	unread, err := thread.UnreadFor(farmer)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
	assert.Equal(t, "is the wheat still available?", thread.LastMessage())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSendMessageCommandHandler_Handle_NotAParticipant(t *testing.T) {
	ctx := t.Context()

	thread, err := conversation.NewConversation(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)
	require.NoError(t, err)
	outsider := kernel.NewUUID()

	cmd, err := commands.NewSendMessageCommand(kernel.NewUUID(), thread.ID(), outsider, "hello")
	require.NoError(t, err)

	repo := new(MockConversationRepository)
	uow := new(MockConversationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConversationRepository").Return(repo).Once(),
		repo.On("Get", ctx, thread.ID()).Return(thread, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConversationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendMessageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, conversation.ErrNotParticipant)
	repo.AssertNotCalled(t, "AddMessage", ctx, mock.Anything)
}
