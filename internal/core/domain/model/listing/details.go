package listing

import (
	"fmt"
	"strings"

	"farmmarket/internal/pkg/errs"
)

// CropDetails carries the crop-specific attributes of a listing.
type CropDetails struct {
	Category string
	Grade    string
}

// Validate checks the crop attributes.
func (d CropDetails) Validate() error {
	if strings.TrimSpace(d.Category) == "" {
		return errs.NewValueIsRequiredError("category")
	}
	return nil
}

// LivestockDetails carries the livestock-specific attributes of a listing.
// Count is the number of animals currently for sale.
type LivestockDetails struct {
	AnimalType   string
	Breed        string
	HealthStatus string
	Count        int
}

// Validate checks the livestock attributes. The count may be zero for a sold
// out listing, but never negative.
func (d LivestockDetails) Validate() error {
	if strings.TrimSpace(d.AnimalType) == "" {
		return errs.NewValueIsRequiredError("animalType")
	}
	if d.Count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", d.Count))
	}
	return nil
}

// LandDetails carries the land-specific attributes of a listing.
// Area is in acres; a land listing is always a single sellable unit.
type LandDetails struct {
	AreaAcres float64
	LandType  string
}

// Validate checks the land attributes.
func (d LandDetails) Validate() error {
	if d.AreaAcres <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("area",
			fmt.Errorf("%v is not greater than 0", d.AreaAcres))
	}
	if strings.TrimSpace(d.LandType) == "" {
		return errs.NewValueIsRequiredError("landType")
	}
	return nil
}
