package kernel_test

import (
	"testing"

	"farmmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should create valid location with district and state", func(t *testing.T) {
		loc, err := kernel.NewLocation("Nashik", "Maharashtra")

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.Equal(t, "Nashik", loc.District())
		assert.Equal(t, "Maharashtra", loc.State())
		assert.Equal(t, "Nashik, Maharashtra", loc.String())
	})

	t.Run("should allow empty state", func(t *testing.T) {
		loc, err := kernel.NewLocation("Anantapur", "")

		require.NoError(t, err)
		assert.Empty(t, loc.State())
		assert.Equal(t, "Anantapur", loc.String())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		loc, err := kernel.NewLocation("  Nashik  ", " Maharashtra ")

		require.NoError(t, err)
		assert.Equal(t, "Nashik", loc.District())
		assert.Equal(t, "Maharashtra", loc.State())
	})

	t.Run("should fail with empty district", func(t *testing.T) {
		_, err := kernel.NewLocation("", "Maharashtra")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "district")
	})

	t.Run("should fail with whitespace-only district", func(t *testing.T) {
		_, err := kernel.NewLocation("   ", "Maharashtra")

		require.Error(t, err)
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var loc kernel.Location

		err := loc.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "location must be created")
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation("Nashik", "Maharashtra")
	b, _ := kernel.NewLocation("Nashik", "Maharashtra")
	c, _ := kernel.NewLocation("Pune", "Maharashtra")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
