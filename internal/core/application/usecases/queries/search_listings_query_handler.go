package queries

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchListingsQueryHandler retrieves marketplace listings from the three
// per-type tables and merges the results into a single page.
//
// Example:
//
//	handler := NewSearchListingsQueryHandler(db)
//	query, _ := NewSearchListingsQuery(SearchListingsFilters{State: "punjab"})
//
//	listings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("found %d listings\n", len(listings))
type SearchListingsQueryHandler struct {
	db *gorm.DB
}

// NewSearchListingsQueryHandler creates a handler for listing searches.
func NewSearchListingsQueryHandler(db *gorm.DB) SearchListingsQueryHandler {
	return SearchListingsQueryHandler{db: db}
}

// Handle executes the search. Listings come back newest first; when no type
// filter is set all three tables are searched and merged.
func (h SearchListingsQueryHandler) Handle(
	ctx context.Context,
	query SearchListingsQuery,
) ([]SearchListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filters := query.Filters()
	offset := (filters.Page - 1) * filters.Limit

	// Each table is fetched with enough rows to cover the requested page,
	// then the merged result is sorted and sliced. With a type filter only
	// one table is hit and the per-table limit is exact.
	perTableLimit := offset + filters.Limit

	listings := make([]SearchListingsQueryResponse, 0)

	wantType := func(t listing.Type) bool {
		return filters.ListingType == nil || *filters.ListingType == t
	}

	if wantType(listing.TypeCrop) {
		rows, err := h.searchCrops(ctx, filters, perTableLimit)
		if err != nil {
			return nil, err
		}
		listings = append(listings, rows...)
	}
	if wantType(listing.TypeLivestock) {
		rows, err := h.searchLivestock(ctx, filters, perTableLimit)
		if err != nil {
			return nil, err
		}
		listings = append(listings, rows...)
	}
	if wantType(listing.TypeLand) {
		rows, err := h.searchLand(ctx, filters, perTableLimit)
		if err != nil {
			return nil, err
		}
		listings = append(listings, rows...)
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})

	if offset >= len(listings) {
		return []SearchListingsQueryResponse{}, nil
	}
	end := offset + filters.Limit
	if end > len(listings) {
		end = len(listings)
	}
	return listings[offset:end], nil
}

// commonConditions builds the WHERE fragment shared by all three tables.
func commonConditions(filters SearchListingsFilters) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 6)

	sb.WriteString("1 = 1")
	if filters.Status != nil {
		sb.WriteString(" AND status = ?")
		args = append(args, int(*filters.Status))
	}
	if filters.District != "" {
		sb.WriteString(" AND district ILIKE ?")
		args = append(args, "%"+filters.District+"%")
	}
	if filters.State != "" {
		sb.WriteString(" AND state ILIKE ?")
		args = append(args, "%"+filters.State+"%")
	}
	if filters.MinPrice != nil {
		sb.WriteString(" AND price >= ?")
		args = append(args, *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		sb.WriteString(" AND price <= ?")
		args = append(args, *filters.MaxPrice)
	}

	return sb.String(), args
}

func (h SearchListingsQueryHandler) searchCrops(
	ctx context.Context,
	filters SearchListingsFilters,
	limit int,
) ([]SearchListingsQueryResponse, error) {
	where, args := commonConditions(filters)
	if filters.Category != "" {
		where += " AND category ILIKE ?"
		args = append(args, filters.Category)
	}
	if filters.Grade != "" {
		where += " AND grade ILIKE ?"
		args = append(args, filters.Grade)
	}
	args = append(args, limit)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			id,
			owner_id,
			title,
			description,
			price,
			district,
			state,
			status,
			created_at,
			quantity_value,
			quantity_unit,
			category,
			grade
		FROM crops
		WHERE %s
		ORDER BY created_at DESC
		LIMIT ?
	`, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]SearchListingsQueryResponse, 0)
	for rows.Next() {
		var resp SearchListingsQueryResponse
		var id, ownerID uuid.UUID
		var status, unit int

		err = rows.Scan(
			&id, &ownerID,
			&resp.Title, &resp.Description, &resp.Price,
			&resp.District, &resp.State,
			&status, &resp.CreatedAt,
			&resp.QuantityValue, &unit,
			&resp.Category, &resp.Grade,
		)
		if err != nil {
			return nil, err
		}

		if err = fillIdentity(&resp, id, ownerID, listing.TypeCrop, status); err != nil {
			return nil, err
		}
		resp.QuantityUnit = listing.Unit(unit).String()
		listings = append(listings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}

func (h SearchListingsQueryHandler) searchLivestock(
	ctx context.Context,
	filters SearchListingsFilters,
	limit int,
) ([]SearchListingsQueryResponse, error) {
	where, args := commonConditions(filters)
	if filters.AnimalType != "" {
		where += " AND animal_type ILIKE ?"
		args = append(args, filters.AnimalType)
	}
	args = append(args, limit)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			id,
			owner_id,
			title,
			description,
			price,
			district,
			state,
			status,
			created_at,
			animal_type,
			breed,
			health_status,
			count
		FROM livestocks
		WHERE %s
		ORDER BY created_at DESC
		LIMIT ?
	`, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]SearchListingsQueryResponse, 0)
	for rows.Next() {
		var resp SearchListingsQueryResponse
		var id, ownerID uuid.UUID
		var status int

		err = rows.Scan(
			&id, &ownerID,
			&resp.Title, &resp.Description, &resp.Price,
			&resp.District, &resp.State,
			&status, &resp.CreatedAt,
			&resp.AnimalType, &resp.Breed, &resp.HealthStatus, &resp.Count,
		)
		if err != nil {
			return nil, err
		}

		if err = fillIdentity(&resp, id, ownerID, listing.TypeLivestock, status); err != nil {
			return nil, err
		}
		listings = append(listings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}

func (h SearchListingsQueryHandler) searchLand(
	ctx context.Context,
	filters SearchListingsFilters,
	limit int,
) ([]SearchListingsQueryResponse, error) {
	where, args := commonConditions(filters)
	if filters.LandType != "" {
		where += " AND land_type ILIKE ?"
		args = append(args, filters.LandType)
	}
	args = append(args, limit)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			id,
			owner_id,
			title,
			description,
			price,
			district,
			state,
			status,
			created_at,
			area_acres,
			land_type
		FROM lands
		WHERE %s
		ORDER BY created_at DESC
		LIMIT ?
	`, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]SearchListingsQueryResponse, 0)
	for rows.Next() {
		var resp SearchListingsQueryResponse
		var id, ownerID uuid.UUID
		var status int

		err = rows.Scan(
			&id, &ownerID,
			&resp.Title, &resp.Description, &resp.Price,
			&resp.District, &resp.State,
			&status, &resp.CreatedAt,
			&resp.AreaAcres, &resp.LandType,
		)
		if err != nil {
			return nil, err
		}

		if err = fillIdentity(&resp, id, ownerID, listing.TypeLand, status); err != nil {
			return nil, err
		}
		listings = append(listings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}

func fillIdentity(
	resp *SearchListingsQueryResponse,
	id, ownerID uuid.UUID,
	listingType listing.Type,
	status int,
) error {
	listingID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}
	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return err
	}

	resp.ID = listingID
	resp.OwnerID = owner
	resp.ListingType = listingType.String()
	resp.Status = listing.Status(status).String()
	return nil
}
