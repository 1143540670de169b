// Package listingrepo provides data transfer objects and mapping functions for
// listing persistence. Each listing variant lives in its own table (crops,
// livestocks, lands); the repository presents them as one aggregate.
package listingrepo

import (
	"strings"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

const imageSeparator = "\n"

// CropDTO represents the database structure for crop listings.
type CropDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	Title         string
	Description   string
	Price         float64
	District      string `gorm:"index"`
	State         string
	Images        string
	Status        int `gorm:"index"`
	QuantityValue float64
	QuantityUnit  int
	Category      string `gorm:"index"`
	Grade         string
	CreatedAt     time.Time
}

// TableName specifies the database table name for crop listings.
func (CropDTO) TableName() string {
	return "crops"
}

// LivestockDTO represents the database structure for livestock listings.
type LivestockDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`
	Title        string
	Description  string
	Price        float64
	District     string `gorm:"index"`
	State        string
	Images       string
	Status       int `gorm:"index"`
	AnimalType   string `gorm:"index"`
	Breed        string
	HealthStatus string
	Count        int
	CreatedAt    time.Time
}

// TableName specifies the database table name for livestock listings.
func (LivestockDTO) TableName() string {
	return "livestocks"
}

// LandDTO represents the database structure for land listings.
type LandDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string
	Price       float64
	District    string `gorm:"index"`
	State       string
	Images      string
	Status      int `gorm:"index"`
	AreaAcres   float64
	LandType    string `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for land listings.
func (LandDTO) TableName() string {
	return "lands"
}

func encodeImages(images []string) string {
	return strings.Join(images, imageSeparator)
}

func decodeImages(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, imageSeparator)
}

func cropFromDomain(l *listing.Listing) CropDTO {
	qty := l.Quantity()
	return CropDTO{
		ID:            l.ID().Bytes(),
		OwnerID:       l.OwnerID().Bytes(),
		Title:         l.Title(),
		Description:   l.Description(),
		Price:         l.Price().Amount(),
		District:      l.Location().District(),
		State:         l.Location().State(),
		Images:        encodeImages(l.Images()),
		Status:        int(l.Status()),
		QuantityValue: qty.Value(),
		QuantityUnit:  int(qty.Unit()),
		Category:      l.Crop().Category,
		Grade:         l.Crop().Grade,
		CreatedAt:     l.CreatedAt(),
	}
}

func livestockFromDomain(l *listing.Listing) LivestockDTO {
	return LivestockDTO{
		ID:           l.ID().Bytes(),
		OwnerID:      l.OwnerID().Bytes(),
		Title:        l.Title(),
		Description:  l.Description(),
		Price:        l.Price().Amount(),
		District:     l.Location().District(),
		State:        l.Location().State(),
		Images:       encodeImages(l.Images()),
		Status:       int(l.Status()),
		AnimalType:   l.Livestock().AnimalType,
		Breed:        l.Livestock().Breed,
		HealthStatus: l.Livestock().HealthStatus,
		Count:        l.Livestock().Count,
		CreatedAt:    l.CreatedAt(),
	}
}

func landFromDomain(l *listing.Listing) LandDTO {
	return LandDTO{
		ID:          l.ID().Bytes(),
		OwnerID:     l.OwnerID().Bytes(),
		Title:       l.Title(),
		Description: l.Description(),
		Price:       l.Price().Amount(),
		District:    l.Location().District(),
		State:       l.Location().State(),
		Images:      encodeImages(l.Images()),
		Status:      int(l.Status()),
		AreaAcres:   l.Land().AreaAcres,
		LandType:    l.Land().LandType,
		CreatedAt:   l.CreatedAt(),
	}
}

func restoreCommon(
	rawID, rawOwner uuid.UUID, price float64, district, state string,
) (kernel.UUID, kernel.UUID, kernel.Price, kernel.Location, error) {
	var zero kernel.UUID

	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return zero, zero, kernel.Price{}, kernel.Location{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(rawOwner[:])
	if err != nil {
		return zero, zero, kernel.Price{}, kernel.Location{}, err
	}

	p, err := kernel.NewPrice(price)
	if err != nil {
		return zero, zero, kernel.Price{}, kernel.Location{}, err
	}

	loc, err := kernel.NewLocation(district, state)
	if err != nil {
		return zero, zero, kernel.Price{}, kernel.Location{}, err
	}

	return id, ownerID, p, loc, nil
}

func cropToDomain(dto CropDTO) (*listing.Listing, error) {
	id, ownerID, price, loc, err := restoreCommon(dto.ID, dto.OwnerID, dto.Price, dto.District, dto.State)
	if err != nil {
		return nil, err
	}

	qty, err := listing.NewQuantity(dto.QuantityValue, listing.Unit(dto.QuantityUnit))
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(
		id, ownerID, listing.TypeCrop,
		dto.Title, dto.Description, price, loc, decodeImages(dto.Images),
		listing.Status(dto.Status),
		&qty, &listing.CropDetails{Category: dto.Category, Grade: dto.Grade}, nil, nil,
		dto.CreatedAt,
	)
}

func livestockToDomain(dto LivestockDTO) (*listing.Listing, error) {
	id, ownerID, price, loc, err := restoreCommon(dto.ID, dto.OwnerID, dto.Price, dto.District, dto.State)
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(
		id, ownerID, listing.TypeLivestock,
		dto.Title, dto.Description, price, loc, decodeImages(dto.Images),
		listing.Status(dto.Status),
		nil, nil, &listing.LivestockDetails{
			AnimalType:   dto.AnimalType,
			Breed:        dto.Breed,
			HealthStatus: dto.HealthStatus,
			Count:        dto.Count,
		}, nil,
		dto.CreatedAt,
	)
}

func landToDomain(dto LandDTO) (*listing.Listing, error) {
	id, ownerID, price, loc, err := restoreCommon(dto.ID, dto.OwnerID, dto.Price, dto.District, dto.State)
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(
		id, ownerID, listing.TypeLand,
		dto.Title, dto.Description, price, loc, decodeImages(dto.Images),
		listing.Status(dto.Status),
		nil, nil, nil, &listing.LandDetails{AreaAcres: dto.AreaAcres, LandType: dto.LandType},
		dto.CreatedAt,
	)
}
