package listingrepo

import (
	"context"
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormListingRepository implements ListingRepository using GORM.
// Dispatches each aggregate to its variant table by listing type.
type GormListingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormListingRepository creates a new GORM listing repository.
func NewGormListingRepository(db *gorm.DB, tracker aggregateTracker) *GormListingRepository {
	return &GormListingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new listing to its variant table.
func (r *GormListingRepository) Add(ctx context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var err error
	switch aggregate.Type() {
	case listing.TypeCrop:
		dto := cropFromDomain(aggregate)
		err = r.db.WithContext(ctx).Create(&dto).Error
	case listing.TypeLivestock:
		dto := livestockFromDomain(aggregate)
		err = r.db.WithContext(ctx).Create(&dto).Error
	default:
		dto := landFromDomain(aggregate)
		err = r.db.WithContext(ctx).Create(&dto).Error
	}
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing listing to its variant table.
func (r *GormListingRepository) Update(ctx context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var result *gorm.DB
	switch aggregate.Type() {
	case listing.TypeCrop:
		dto := cropFromDomain(aggregate)
		result = r.db.WithContext(ctx).Model(&CropDTO{}).
			Where("id = ?", dto.ID).
			Select("*").Omit("id", "created_at").Updates(&dto)
	case listing.TypeLivestock:
		dto := livestockFromDomain(aggregate)
		result = r.db.WithContext(ctx).Model(&LivestockDTO{}).
			Where("id = ?", dto.ID).
			Select("*").Omit("id", "created_at").Updates(&dto)
	default:
		dto := landFromDomain(aggregate)
		result = r.db.WithContext(ctx).Model(&LandDTO{}).
			Where("id = ?", dto.ID).
			Select("*").Omit("id", "created_at").Updates(&dto)
	}
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a listing from whichever variant table holds it.
func (r *GormListingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	raw := id.Bytes()
	for _, model := range []any{&CropDTO{}, &LivestockDTO{}, &LandDTO{}} {
		result := r.db.WithContext(ctx).Delete(model, "id = ?", raw)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
	}

	return errs.NewObjectNotFoundError("listing", id.String())
}

// Get retrieves a listing by ID, whichever variant it is.
func (r *GormListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	raw := id.Bytes()

	var cropDTO CropDTO
	err := r.db.WithContext(ctx).First(&cropDTO, "id = ?", raw).Error
	if err == nil {
		return cropToDomain(cropDTO)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var livestockDTO LivestockDTO
	err = r.db.WithContext(ctx).First(&livestockDTO, "id = ?", raw).Error
	if err == nil {
		return livestockToDomain(livestockDTO)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var landDTO LandDTO
	err = r.db.WithContext(ctx).First(&landDTO, "id = ?", raw).Error
	if err == nil {
		return landToDomain(landDTO)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, errs.NewObjectNotFoundError("listing", id.String())
}

// GetAllByOwner retrieves every listing owned by the given user across all
// three variant tables, newest first.
func (r *GormListingRepository) GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*listing.Listing, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	raw := ownerID.Bytes()
	listings := make([]*listing.Listing, 0)

	var cropDTOs []CropDTO
	if err := r.db.WithContext(ctx).Find(&cropDTOs, "owner_id = ?", raw).Error; err != nil {
		return nil, err
	}
	for _, dto := range cropDTOs {
		l, err := cropToDomain(dto)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	var livestockDTOs []LivestockDTO
	if err := r.db.WithContext(ctx).Find(&livestockDTOs, "owner_id = ?", raw).Error; err != nil {
		return nil, err
	}
	for _, dto := range livestockDTOs {
		l, err := livestockToDomain(dto)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	var landDTOs []LandDTO
	if err := r.db.WithContext(ctx).Find(&landDTOs, "owner_id = ?", raw).Error; err != nil {
		return nil, err
	}
	for _, dto := range landDTOs {
		l, err := landToDomain(dto)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, nil
}
