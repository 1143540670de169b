package queries

import (
	"context"
	"database/sql"
	"errors"

	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetListingQueryHandler looks a listing up by ID across the crops,
// livestocks, and lands tables. The response reuses the search row shape.
type GetListingQueryHandler struct {
	db *gorm.DB
}

// NewGetListingQueryHandler creates a handler for single listing lookups.
func NewGetListingQueryHandler(db *gorm.DB) GetListingQueryHandler {
	return GetListingQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFound when no table holds the
// listing.
func (h GetListingQueryHandler) Handle(
	ctx context.Context,
	query GetListingQuery,
) (SearchListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchListingsQueryResponse{}, err
	}

	id := query.listingID.String()

	resp, err := h.getCrop(ctx, id)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return SearchListingsQueryResponse{}, err
	}

	resp, err = h.getLivestock(ctx, id)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return SearchListingsQueryResponse{}, err
	}

	resp, err = h.getLand(ctx, id)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return SearchListingsQueryResponse{}, err
	}

	return SearchListingsQueryResponse{}, errs.NewObjectNotFoundError("listingID", query.listingID)
}

func (h GetListingQueryHandler) getCrop(ctx context.Context, id string) (SearchListingsQueryResponse, error) {
	var resp SearchListingsQueryResponse
	var rawID, ownerID uuid.UUID
	var status, unit int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, owner_id, title, description, price, district, state, status,
			created_at, quantity_value, quantity_unit, category, grade
		FROM crops
		WHERE id = ?
	`, id).Row()
	err := row.Scan(
		&rawID, &ownerID,
		&resp.Title, &resp.Description, &resp.Price,
		&resp.District, &resp.State,
		&status, &resp.CreatedAt,
		&resp.QuantityValue, &unit,
		&resp.Category, &resp.Grade,
	)
	if err != nil {
		return SearchListingsQueryResponse{}, err
	}

	if err = fillIdentity(&resp, rawID, ownerID, listing.TypeCrop, status); err != nil {
		return SearchListingsQueryResponse{}, err
	}
	resp.QuantityUnit = listing.Unit(unit).String()
	return resp, nil
}

func (h GetListingQueryHandler) getLivestock(ctx context.Context, id string) (SearchListingsQueryResponse, error) {
	var resp SearchListingsQueryResponse
	var rawID, ownerID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, owner_id, title, description, price, district, state, status,
			created_at, animal_type, breed, health_status, count
		FROM livestocks
		WHERE id = ?
	`, id).Row()
	err := row.Scan(
		&rawID, &ownerID,
		&resp.Title, &resp.Description, &resp.Price,
		&resp.District, &resp.State,
		&status, &resp.CreatedAt,
		&resp.AnimalType, &resp.Breed, &resp.HealthStatus, &resp.Count,
	)
	if err != nil {
		return SearchListingsQueryResponse{}, err
	}

	if err = fillIdentity(&resp, rawID, ownerID, listing.TypeLivestock, status); err != nil {
		return SearchListingsQueryResponse{}, err
	}
	return resp, nil
}

func (h GetListingQueryHandler) getLand(ctx context.Context, id string) (SearchListingsQueryResponse, error) {
	var resp SearchListingsQueryResponse
	var rawID, ownerID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, owner_id, title, description, price, district, state, status,
			created_at, area_acres, land_type
		FROM lands
		WHERE id = ?
	`, id).Row()
	err := row.Scan(
		&rawID, &ownerID,
		&resp.Title, &resp.Description, &resp.Price,
		&resp.District, &resp.State,
		&status, &resp.CreatedAt,
		&resp.AreaAcres, &resp.LandType,
	)
	if err != nil {
		return SearchListingsQueryResponse{}, err
	}

	if err = fillIdentity(&resp, rawID, ownerID, listing.TypeLand, status); err != nil {
		return SearchListingsQueryResponse{}, err
	}
	return resp, nil
}
