package queries_test

import (
	"testing"

	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchListingsQuery(t *testing.T) {
	t.Run("should create query with defaults", func(t *testing.T) {
		query, err := queries.NewSearchListingsQuery(queries.SearchListingsFilters{})

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, 1, query.Filters().Page)
		assert.Equal(t, 20, query.Filters().Limit)
	})

	t.Run("should cap the page size", func(t *testing.T) {
		query, err := queries.NewSearchListingsQuery(queries.SearchListingsFilters{Limit: 500})

		require.NoError(t, err)
		assert.Equal(t, 100, query.Filters().Limit)
	})

	t.Run("should trim text filters", func(t *testing.T) {
		query, err := queries.NewSearchListingsQuery(queries.SearchListingsFilters{
			District: "  Pune  ",
			Category: " wheat ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Pune", query.Filters().District)
		assert.Equal(t, "wheat", query.Filters().Category)
	})

	t.Run("should reject an invalid listing type", func(t *testing.T) {
		bad := listing.TypeUnknown
		_, err := queries.NewSearchListingsQuery(queries.SearchListingsFilters{ListingType: &bad})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a negative price bound", func(t *testing.T) {
		minPrice := -1.0
		_, err := queries.NewSearchListingsQuery(queries.SearchListingsFilters{MinPrice: &minPrice})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation for zero value query", func(t *testing.T) {
		var query queries.SearchListingsQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrSearchListingsQueryIsNotConstructed)
	})
}
