package listing_test

import (
	"testing"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLocation(t *testing.T) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation("Nashik", "Maharashtra")
	require.NoError(t, err)
	return loc
}

func validPrice(t *testing.T) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(2200)
	require.NoError(t, err)
	return price
}

func newCropListing(t *testing.T, value float64) *listing.Listing {
	t.Helper()
	qty, err := listing.NewQuantity(value, listing.UnitKg)
	require.NoError(t, err)
	l, err := listing.NewCropListing(
		kernel.NewUUID(), kernel.NewUUID(),
		"Wheat, sharbati", "fresh harvest",
		validPrice(t), validLocation(t), nil,
		qty, listing.CropDetails{Category: "grains", Grade: "A"},
	)
	require.NoError(t, err)
	return l
}

func newLivestockListing(t *testing.T, count int) *listing.Listing {
	t.Helper()
	l, err := listing.NewLivestockListing(
		kernel.NewUUID(), kernel.NewUUID(),
		"Gir cows", "",
		validPrice(t), validLocation(t), nil,
		listing.LivestockDetails{AnimalType: "cow", Breed: "Gir", HealthStatus: "vaccinated", Count: count},
	)
	require.NoError(t, err)
	return l
}

func newLandListing(t *testing.T) *listing.Listing {
	t.Helper()
	l, err := listing.NewLandListing(
		kernel.NewUUID(), kernel.NewUUID(),
		"5 acre farmland", "",
		validPrice(t), validLocation(t), nil,
		listing.LandDetails{AreaAcres: 5, LandType: "agricultural"},
	)
	require.NoError(t, err)
	return l
}

func TestNewCropListing(t *testing.T) {
	t.Run("should create available crop listing", func(t *testing.T) {
		l := newCropListing(t, 100)

		require.NoError(t, l.Validate())
		assert.Equal(t, listing.TypeCrop, l.Type())
		assert.Equal(t, listing.StatusAvailable, l.Status())
		assert.InDelta(t, 100.0, l.RemainingQuantity(), 0.0001)
		assert.Equal(t, "kg", l.QuantityUnit())
		assert.Equal(t, "grains", l.Crop().Category)
		assert.Nil(t, l.Livestock())
		assert.Nil(t, l.Land())
	})

	t.Run("should fail with zero stock", func(t *testing.T) {
		qty, err := listing.NewQuantity(0, listing.UnitKg)
		require.NoError(t, err)

		_, err = listing.NewCropListing(
			kernel.NewUUID(), kernel.NewUUID(), "Wheat", "",
			validPrice(t), validLocation(t), nil,
			qty, listing.CropDetails{Category: "grains"},
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "stock to sell")
	})

	t.Run("should fail with empty title", func(t *testing.T) {
		qty, _ := listing.NewQuantity(10, listing.UnitKg)

		_, err := listing.NewCropListing(
			kernel.NewUUID(), kernel.NewUUID(), "  ", "",
			validPrice(t), validLocation(t), nil,
			qty, listing.CropDetails{Category: "grains"},
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("should fail with invalid owner", func(t *testing.T) {
		qty, _ := listing.NewQuantity(10, listing.UnitKg)
		var noOwner kernel.UUID

		_, err := listing.NewCropListing(
			kernel.NewUUID(), noOwner, "Wheat", "",
			validPrice(t), validLocation(t), nil,
			qty, listing.CropDetails{Category: "grains"},
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ownerID")
	})
}

func TestListing_Allocate_Crop(t *testing.T) {
	t.Run("partial allocation keeps listing available", func(t *testing.T) {
		l := newCropListing(t, 100)

		require.NoError(t, l.Allocate(30))

		assert.InDelta(t, 70.0, l.RemainingQuantity(), 0.0001)
		assert.Equal(t, listing.StatusAvailable, l.Status())
	})

	t.Run("exhausting allocation marks listing sold", func(t *testing.T) {
		l := newCropListing(t, 20)

		require.NoError(t, l.Allocate(20))

		assert.InDelta(t, 0.0, l.RemainingQuantity(), 0.0001)
		assert.Equal(t, listing.StatusSold, l.Status())
	})

	t.Run("over-allocation fails naming the shortfall", func(t *testing.T) {
		l := newCropListing(t, 20)

		err := l.Allocate(30)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "short 10 kg")
		assert.InDelta(t, 20.0, l.RemainingQuantity(), 0.0001)
		assert.Equal(t, listing.StatusAvailable, l.Status())
	})

	t.Run("allocation against sold listing fails with conflict", func(t *testing.T) {
		l := newCropListing(t, 20)
		require.NoError(t, l.Allocate(20))

		err := l.Allocate(1)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("release is the exact inverse of allocation", func(t *testing.T) {
		l := newCropListing(t, 100)
		require.NoError(t, l.Allocate(100))
		require.Equal(t, listing.StatusSold, l.Status())

		require.NoError(t, l.Release(100))

		assert.InDelta(t, 100.0, l.RemainingQuantity(), 0.0001)
		assert.Equal(t, listing.StatusAvailable, l.Status())
	})
}

func TestListing_Allocate_Livestock(t *testing.T) {
	t.Run("deducts whole animals", func(t *testing.T) {
		l := newLivestockListing(t, 5)

		require.NoError(t, l.Allocate(2))

		assert.InDelta(t, 3.0, l.RemainingQuantity(), 0.0001)
		assert.Equal(t, listing.StatusAvailable, l.Status())
	})

	t.Run("rejects fractional animals", func(t *testing.T) {
		l := newLivestockListing(t, 5)

		err := l.Allocate(1.5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "whole animal count")
	})

	t.Run("selling the last animal marks listing sold", func(t *testing.T) {
		l := newLivestockListing(t, 2)

		require.NoError(t, l.Allocate(2))

		assert.Equal(t, listing.StatusSold, l.Status())

		require.NoError(t, l.Release(2))
		assert.InDelta(t, 2.0, l.RemainingQuantity(), 0.0001)
		assert.Equal(t, listing.StatusAvailable, l.Status())
	})

	t.Run("over-allocation names animal shortfall", func(t *testing.T) {
		l := newLivestockListing(t, 2)

		err := l.Allocate(5)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "short 3 animals")
	})
}

func TestListing_Allocate_Land(t *testing.T) {
	t.Run("allocation sells the single unit unconditionally", func(t *testing.T) {
		l := newLandListing(t)

		require.NoError(t, l.Allocate(0))

		assert.Equal(t, listing.StatusSold, l.Status())
		assert.InDelta(t, 0.0, l.RemainingQuantity(), 0.0001)
	})

	t.Run("release returns the unit to available", func(t *testing.T) {
		l := newLandListing(t)
		require.NoError(t, l.Allocate(0))

		require.NoError(t, l.Release(0))

		assert.Equal(t, listing.StatusAvailable, l.Status())
		assert.InDelta(t, 1.0, l.RemainingQuantity(), 0.0001)
	})

	t.Run("second allocation fails with conflict", func(t *testing.T) {
		l := newLandListing(t)
		require.NoError(t, l.Allocate(0))

		require.ErrorIs(t, l.Allocate(0), errs.ErrConflict)
	})
}

func TestListing_ChangeStatus(t *testing.T) {
	t.Run("owner can reserve and free a listing", func(t *testing.T) {
		l := newCropListing(t, 10)

		require.NoError(t, l.ChangeStatus(listing.StatusReserved))
		assert.Equal(t, listing.StatusReserved, l.Status())
		assert.False(t, l.IsAvailable())

		require.NoError(t, l.ChangeStatus(listing.StatusAvailable))
		assert.True(t, l.IsAvailable())
	})

	t.Run("under_offer is land-only", func(t *testing.T) {
		crop := newCropListing(t, 10)
		land := newLandListing(t)

		require.Error(t, crop.ChangeStatus(listing.StatusUnderOffer))
		require.NoError(t, land.ChangeStatus(listing.StatusUnderOffer))
	})

	t.Run("sold cannot be set directly", func(t *testing.T) {
		l := newCropListing(t, 10)

		require.ErrorIs(t, l.ChangeStatus(listing.StatusSold), errs.ErrConflict)
	})
}

func TestRestoreListing(t *testing.T) {
	t.Run("round-trips a crop listing", func(t *testing.T) {
		qty, _ := listing.NewQuantity(50, listing.UnitQuintal)
		createdAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

		l, err := listing.RestoreListing(
			kernel.NewUUID(), kernel.NewUUID(), listing.TypeCrop,
			"Onion", "", validPrice(t), validLocation(t), []string{"img-1"},
			listing.StatusAvailable,
			&qty, &listing.CropDetails{Category: "vegetables", Grade: "B"},
			nil, nil, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, createdAt, l.CreatedAt())
		assert.Equal(t, []string{"img-1"}, l.Images())
	})

	t.Run("rejects sold listing with stock remaining", func(t *testing.T) {
		qty, _ := listing.NewQuantity(50, listing.UnitKg)

		_, err := listing.RestoreListing(
			kernel.NewUUID(), kernel.NewUUID(), listing.TypeCrop,
			"Onion", "", validPrice(t), validLocation(t), nil,
			listing.StatusSold,
			&qty, &listing.CropDetails{Category: "vegetables"},
			nil, nil, time.Now(),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sold with 50 kg remaining")
	})

	t.Run("rejects available listing with exhausted stock", func(t *testing.T) {
		qty, _ := listing.NewQuantity(0, listing.UnitKg)

		_, err := listing.RestoreListing(
			kernel.NewUUID(), kernel.NewUUID(), listing.TypeCrop,
			"Onion", "", validPrice(t), validLocation(t), nil,
			listing.StatusAvailable,
			&qty, &listing.CropDetails{Category: "vegetables"},
			nil, nil, time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("rejects details mismatching the type", func(t *testing.T) {
		_, err := listing.RestoreListing(
			kernel.NewUUID(), kernel.NewUUID(), listing.TypeLand,
			"Plot", "", validPrice(t), validLocation(t), nil,
			listing.StatusAvailable,
			nil, nil, nil, nil, time.Now(),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "land details")
	})
}

func TestListing_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var l listing.Listing

		require.Error(t, l.Validate())
	})
}
