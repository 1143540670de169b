package commands_test

import (
	"errors"
	"testing"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/model/user"
	"farmmarket/internal/core/domain/services"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	seller := kernel.NewUUID()
	buyer := kernel.NewUUID()
	lst := testCropListing(t, seller, 100)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyer, lst.ID(), 40, "need by friday", testContact(t))
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockMarketUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Get", ctx, lst.ID()).Return(lst, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, buyer).Return(testUser(t, buyer, user.Buyer), nil).Once(),
		userRepo.On("Get", ctx, seller).Return(testUser(t, seller, user.Farmer), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewOrderProcessor())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := orderRepo.Calls[0]
	created := addCall.Arguments[1].(*order.Order)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, 40.0, created.Quantity())
	// Placing an order must not touch the stock.
	assert.Equal(t, 100.0, lst.RemainingQuantity())

	orderRepo.AssertExpectations(t)
	listingRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockMarketUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, services.NewOrderProcessor())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ListingNotFound(t *testing.T) {
	ctx := t.Context()

	listingID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), listingID, 10, "", testContact(t))
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	uow := new(MockMarketUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Get", ctx, listingID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewOrderProcessor())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_BuyerNotFound(t *testing.T) {
	ctx := t.Context()

	seller := kernel.NewUUID()
	buyer := kernel.NewUUID()
	lst := testCropListing(t, seller, 100)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyer, lst.ID(), 10, "", testContact(t))
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockMarketUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Get", ctx, lst.ID()).Return(lst, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, buyer).
			Return(nil, errs.NewObjectNotFoundError("user", buyer.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewOrderProcessor())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestCreateOrderCommandHandler_Handle_BuyerHasWrongRole(t *testing.T) {
	ctx := t.Context()

	seller := kernel.NewUUID()
	buyer := kernel.NewUUID()
	lst := testCropListing(t, seller, 100)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyer, lst.ID(), 10, "", testContact(t))
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockMarketUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Get", ctx, lst.ID()).Return(lst, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, buyer).Return(testUser(t, buyer, user.Farmer), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewOrderProcessor())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestCreateOrderCommandHandler_Handle_SellerIsNotAFarmer(t *testing.T) {
	ctx := t.Context()

	seller := kernel.NewUUID()
	buyer := kernel.NewUUID()
	lst := testCropListing(t, seller, 100)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyer, lst.ID(), 10, "", testContact(t))
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockMarketUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Get", ctx, lst.ID()).Return(lst, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, buyer).Return(testUser(t, buyer, user.Buyer), nil).Once(),
		userRepo.On("Get", ctx, seller).Return(testUser(t, seller, user.Buyer), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewOrderProcessor())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestCreateOrderCommandHandler_Handle_ListingNotOpen(t *testing.T) {
	ctx := t.Context()

	seller := kernel.NewUUID()
	buyer := kernel.NewUUID()
	lst := testCropListing(t, seller, 10)
	require.NoError(t, lst.Allocate(10)) // sells out the listing

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyer, lst.ID(), 5, "", testContact(t))
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockMarketUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Get", ctx, lst.ID()).Return(lst, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, buyer).Return(testUser(t, buyer, user.Buyer), nil).Once(),
		userRepo.On("Get", ctx, seller).Return(testUser(t, seller, user.Farmer), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewOrderProcessor())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestCreateOrderCommandHandler_Handle_SelfOrder(t *testing.T) {
	ctx := t.Context()

	seller := kernel.NewUUID()
	lst := testCropListing(t, seller, 100)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), seller, lst.ID(), 5, "", testContact(t))
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	uow := new(MockMarketUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Get", ctx, lst.ID()).Return(lst, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewOrderProcessor())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrSelfOrder)
	uow.AssertNotCalled(t, "UserRepository")
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	seller := kernel.NewUUID()
	buyer := kernel.NewUUID()
	lst := testCropListing(t, seller, 100)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), buyer, lst.ID(), 10, "", testContact(t))
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockMarketUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Get", ctx, lst.ID()).Return(lst, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, buyer).Return(testUser(t, buyer, user.Buyer), nil).Once(),
		userRepo.On("Get", ctx, seller).Return(testUser(t, seller, user.Farmer), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewOrderProcessor())
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}
