package commands_test

import (
	"testing"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/model/user"
	"farmmarket/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func testPrice(t *testing.T, amount float64) kernel.Price {
	t.Helper()
	p, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	return p
}

func testLocation(t *testing.T) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation("Pune", "Maharashtra")
	require.NoError(t, err)
	return loc
}

func testContact(t *testing.T) order.BuyerContact {
	t.Helper()
	c, err := order.NewBuyerContact("Asha Patil", "asha@example.com", "+91 91234 56789")
	require.NoError(t, err)
	return c
}

func testCropListing(t *testing.T, owner kernel.UUID, kgs float64) *listing.Listing {
	t.Helper()
	qty, err := listing.NewQuantity(kgs, listing.UnitKg)
	require.NoError(t, err)
	l, err := listing.NewCropListing(
		kernel.NewUUID(), owner,
		"Basmati rice", "Aged basmati, this season",
		testPrice(t, 80), testLocation(t), nil,
		qty, listing.CropDetails{Category: "rice", Grade: "A"},
	)
	require.NoError(t, err)
	return l
}

func testUser(t *testing.T, id kernel.UUID, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(
		id, "Asha Patil", id.String()+"@example.com", "+91 91234 56789",
		"$2a$04$notarealhashnotarealhashnotarealhashaaaaaaaaaaaaaaaaaa", role,
	)
	require.NoError(t, err)
	return u
}

func testPendingOrder(t *testing.T, lst *listing.Listing, qty float64) *order.Order {
	t.Helper()
	processor := services.NewOrderProcessor()
	ord, err := processor.Place(kernel.NewUUID(), kernel.NewUUID(), lst, qty, "", testContact(t))
	require.NoError(t, err)
	return ord
}
