package commands_test

import (
	"testing"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateListingCommandHandler_Handle_Crop(t *testing.T) {
	ctx := t.Context()

	qty, err := listing.NewQuantity(500, listing.UnitKg)
	require.NoError(t, err)

	cmd, err := commands.NewCreateListingCommand(
		kernel.NewUUID(), kernel.NewUUID(), listing.TypeCrop,
		"Fresh wheat", "Sharbati wheat", testPrice(t, 25), testLocation(t), nil,
		&qty, &listing.CropDetails{Category: "wheat", Grade: "A"}, nil, nil,
	)
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	uow := new(MockListingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Add", ctx, mock.AnythingOfType("*listing.Listing")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateListingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	created := listingRepo.Calls[0].Arguments[1].(*listing.Listing)
	assert.Equal(t, listing.TypeCrop, created.Type())
	assert.Equal(t, listing.StatusAvailable, created.Status())
	assert.Equal(t, 500.0, created.RemainingQuantity())

	listingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateListingCommandHandler_Handle_Land(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateListingCommand(
		kernel.NewUUID(), kernel.NewUUID(), listing.TypeLand,
		"5 acre farmland", "Irrigated plot", testPrice(t, 2250000), testLocation(t), nil,
		nil, nil, nil, &listing.LandDetails{AreaAcres: 5, LandType: "agricultural"},
	)
	require.NoError(t, err)

	listingRepo := new(MockListingRepository)
	uow := new(MockListingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ListingRepository").Return(listingRepo).Once(),
		listingRepo.On("Add", ctx, mock.AnythingOfType("*listing.Listing")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockListingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateListingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	created := listingRepo.Calls[0].Arguments[1].(*listing.Listing)
	assert.Equal(t, listing.TypeLand, created.Type())
	require.NotNil(t, created.Land())
	assert.Equal(t, 5.0, created.Land().AreaAcres)
}

func TestCreateListingCommand_DetailsMismatch(t *testing.T) {
	qty, err := listing.NewQuantity(500, listing.UnitKg)
	require.NoError(t, err)

	t.Run("crop type with land details", func(t *testing.T) {
		_, err := commands.NewCreateListingCommand(
			kernel.NewUUID(), kernel.NewUUID(), listing.TypeCrop,
			"Fresh wheat", "", testPrice(t, 25), testLocation(t), nil,
			&qty, nil, nil, &listing.LandDetails{AreaAcres: 5, LandType: "agricultural"},
		)
		require.ErrorIs(t, err, commands.ErrDetailsMismatch)
	})

	t.Run("crop type without quantity", func(t *testing.T) {
		_, err := commands.NewCreateListingCommand(
			kernel.NewUUID(), kernel.NewUUID(), listing.TypeCrop,
			"Fresh wheat", "", testPrice(t, 25), testLocation(t), nil,
			nil, &listing.CropDetails{Category: "wheat", Grade: "A"}, nil, nil,
		)
		require.ErrorIs(t, err, commands.ErrDetailsMismatch)
	})

	t.Run("two detail blocks at once", func(t *testing.T) {
		_, err := commands.NewCreateListingCommand(
			kernel.NewUUID(), kernel.NewUUID(), listing.TypeLivestock,
			"Murrah buffalo", "", testPrice(t, 60000), testLocation(t), nil,
			nil,
			&listing.CropDetails{Category: "wheat", Grade: "A"},
			&listing.LivestockDetails{AnimalType: "buffalo", Breed: "murrah", HealthStatus: "good", Count: 2},
			nil,
		)
		require.ErrorIs(t, err, commands.ErrDetailsMismatch)
	})
}
