package listing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

var (
	// ErrListingIsNotConstructed is returned when a Listing instance was not
	// created through one of the factory methods.
	ErrListingIsNotConstructed = errors.New("Listing must be created via NewCropListing, NewLivestockListing, NewLandListing, or RestoreListing")
)

// Listing is a sellable unit of crop, livestock, or land owned by a farmer.
// It is the aggregate the order workflow mutates: accepting an order deducts
// stock through Allocate, and rejecting or cancelling an accepted order
// restores it through Release.
//
// Listing maintains these invariants:
//   - Crop and livestock quantities never go negative
//   - Status is sold if and only if the stock is exhausted (crop/livestock)
//     or the single land unit has been allocated
//   - UnderOffer status only appears on land listings
//   - Exactly the details matching the listing type are present
type Listing struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	listingType Type
	title       string
	description string
	price       kernel.Price
	location    kernel.Location
	images      []string
	status      Status
	createdAt   time.Time

	crop      *CropDetails
	quantity  *Quantity
	livestock *LivestockDetails
	land      *LandDetails

	isConstructed bool
}

// NewCropListing creates an available crop listing with the given stock.
func NewCropListing(
	id, ownerID kernel.UUID,
	title, description string,
	price kernel.Price,
	location kernel.Location,
	images []string,
	quantity Quantity,
	details CropDetails,
) (*Listing, error) {
	l, err := newListing(id, ownerID, TypeCrop, title, description, price, location, images)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(quantity.Validate(), details.Validate()); err != nil {
		return nil, err
	}
	if quantity.IsZero() {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("a new crop listing needs stock to sell"))
	}

	l.quantity = &quantity
	l.crop = &details
	return l, nil
}

// NewLivestockListing creates an available livestock listing with the given
// animal count.
func NewLivestockListing(
	id, ownerID kernel.UUID,
	title, description string,
	price kernel.Price,
	location kernel.Location,
	images []string,
	details LivestockDetails,
) (*Listing, error) {
	l, err := newListing(id, ownerID, TypeLivestock, title, description, price, location, images)
	if err != nil {
		return nil, err
	}

	if err = details.Validate(); err != nil {
		return nil, err
	}
	if details.Count == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("a new livestock listing needs animals to sell"))
	}

	l.livestock = &details
	return l, nil
}

// NewLandListing creates an available land listing.
func NewLandListing(
	id, ownerID kernel.UUID,
	title, description string,
	price kernel.Price,
	location kernel.Location,
	images []string,
	details LandDetails,
) (*Listing, error) {
	l, err := newListing(id, ownerID, TypeLand, title, description, price, location, images)
	if err != nil {
		return nil, err
	}

	if err = details.Validate(); err != nil {
		return nil, err
	}

	l.land = &details
	return l, nil
}

// RestoreListing reconstructs a Listing from persistence, re-running all
// invariant checks. Exactly one of the detail arguments must be non-nil and
// must match the listing type; crop listings additionally need a quantity.
func RestoreListing(
	id, ownerID kernel.UUID,
	listingType Type,
	title, description string,
	price kernel.Price,
	location kernel.Location,
	images []string,
	status Status,
	quantity *Quantity,
	crop *CropDetails,
	livestock *LivestockDetails,
	land *LandDetails,
	createdAt time.Time,
) (*Listing, error) {
	l, err := newListing(id, ownerID, listingType, title, description, price, location, images)
	if err != nil {
		return nil, err
	}

	if err = status.ValidateForType(listingType); err != nil {
		return nil, err
	}
	l.status = status
	l.createdAt = createdAt

	switch listingType {
	case TypeCrop:
		if quantity == nil || crop == nil {
			return nil, errs.NewValueIsRequiredError("crop details")
		}
		if err = errors.Join(quantity.Validate(), crop.Validate()); err != nil {
			return nil, err
		}
		l.quantity = quantity
		l.crop = crop
	case TypeLivestock:
		if livestock == nil {
			return nil, errs.NewValueIsRequiredError("livestock details")
		}
		if err = livestock.Validate(); err != nil {
			return nil, err
		}
		l.livestock = livestock
	case TypeLand:
		if land == nil {
			return nil, errs.NewValueIsRequiredError("land details")
		}
		if err = land.Validate(); err != nil {
			return nil, err
		}
		l.land = land
	case TypeUnknown:
		return nil, errs.NewValueIsInvalidError("listingType")
	}

	if err = l.checkStockStatusConsistency(); err != nil {
		return nil, err
	}

	return l, nil
}

func newListing(
	id, ownerID kernel.UUID,
	listingType Type,
	title, description string,
	price kernel.Price,
	location kernel.Location,
	images []string,
) (*Listing, error) {
	l := &Listing{
		listingType:   listingType,
		status:        StatusAvailable,
		createdAt:     time.Now().UTC(),
		images:        append([]string(nil), images...),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setOwnerID(ownerID),
		listingType.Validate(),
		l.setTitle(title),
		l.setPrice(price),
		l.setLocation(location),
	); err != nil {
		return nil, err
	}

	l.description = strings.TrimSpace(description)
	return l, nil
}

// Validate ensures the Listing instance was properly constructed.
func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

// IsEqual compares two listings by their unique identifiers.
func (l *Listing) IsEqual(other *Listing) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() kernel.UUID {
	return l.id
}

// OwnerID returns the identifier of the farmer who owns the listing.
func (l *Listing) OwnerID() kernel.UUID {
	return l.ownerID
}

// Type returns the listing variant.
func (l *Listing) Type() Type {
	return l.listingType
}

// Title returns the listing title.
func (l *Listing) Title() string {
	return l.title
}

// Description returns the listing description, which may be empty.
func (l *Listing) Description() string {
	return l.description
}

// Price returns the asking price.
func (l *Listing) Price() kernel.Price {
	return l.price
}

// Location returns where the listing is offered from.
func (l *Listing) Location() kernel.Location {
	return l.location
}

// Images returns a copy of the image references.
func (l *Listing) Images() []string {
	return append([]string(nil), l.images...)
}

// Status returns the current sale state.
func (l *Listing) Status() Status {
	return l.status
}

// CreatedAt returns when the listing was created.
func (l *Listing) CreatedAt() time.Time {
	return l.createdAt
}

// Quantity returns the crop stock, or nil for other listing types.
func (l *Listing) Quantity() *Quantity {
	return l.quantity
}

// Crop returns the crop details, or nil for other listing types.
func (l *Listing) Crop() *CropDetails {
	return l.crop
}

// Livestock returns the livestock details, or nil for other listing types.
func (l *Listing) Livestock() *LivestockDetails {
	return l.livestock
}

// Land returns the land details, or nil for other listing types.
func (l *Listing) Land() *LandDetails {
	return l.land
}

// IsOwnedBy reports whether the given user owns the listing.
func (l *Listing) IsOwnedBy(userID kernel.UUID) bool {
	return l.ownerID.IsEqual(userID)
}

// IsAvailable reports whether the listing can take new orders.
func (l *Listing) IsAvailable() bool {
	return l.status == StatusAvailable
}

// RemainingQuantity returns the divisible stock still for sale: the crop
// quantity value, the livestock head count, or 1/0 for an unsold/sold land
// unit.
func (l *Listing) RemainingQuantity() float64 {
	switch l.listingType {
	case TypeCrop:
		return l.quantity.Value()
	case TypeLivestock:
		return float64(l.livestock.Count)
	case TypeLand:
		if l.status == StatusSold {
			return 0
		}
		return 1
	case TypeUnknown:
	}
	return 0
}

// QuantityUnit returns the unit stock is counted in: the crop unit,
// "animals" for livestock, or "plot" for land.
func (l *Listing) QuantityUnit() string {
	switch l.listingType {
	case TypeCrop:
		return l.quantity.Unit().String()
	case TypeLivestock:
		return "animals"
	case TypeLand:
		return "plot"
	case TypeUnknown:
	}
	return "Unknown"
}

// Allocate deducts stock for an accepted order.
//
// The listing must be available. For crop and livestock listings the amount
// must not exceed the remaining stock (InsufficientStockError names the
// shortfall and unit); when the deduction exhausts the stock the status
// becomes sold. For land the amount is ignored and the single unit is sold.
func (l *Listing) Allocate(amount float64) error {
	if !l.IsAvailable() {
		return errs.NewConflictError("listing",
			fmt.Sprintf("listing is %s, not available", l.status))
	}

	switch l.listingType {
	case TypeCrop:
		remaining, err := l.quantity.Subtract(amount)
		if err != nil {
			return err
		}
		l.quantity = &remaining
		if remaining.IsZero() {
			l.status = StatusSold
		}
	case TypeLivestock:
		count, err := wholeAnimalCount(amount)
		if err != nil {
			return err
		}
		if count > l.livestock.Count {
			return errs.NewInsufficientStockError(float64(count), float64(l.livestock.Count), "animals")
		}
		l.livestock.Count -= count
		if l.livestock.Count == 0 {
			l.status = StatusSold
		}
	case TypeLand:
		l.status = StatusSold
	case TypeUnknown:
		return errs.NewValueIsInvalidError("listingType")
	}

	return nil
}

// Release restores stock previously deducted by Allocate and returns the
// listing to available. It is the exact inverse of the deduction: releasing
// the accepted amount brings the quantity back to its pre-accept value.
func (l *Listing) Release(amount float64) error {
	switch l.listingType {
	case TypeCrop:
		restored, err := l.quantity.Add(amount)
		if err != nil {
			return err
		}
		l.quantity = &restored
	case TypeLivestock:
		count, err := wholeAnimalCount(amount)
		if err != nil {
			return err
		}
		l.livestock.Count += count
	case TypeLand:
		// Nothing to add back; the single unit becomes available again.
	case TypeUnknown:
		return errs.NewValueIsInvalidError("listingType")
	}

	l.status = StatusAvailable
	return nil
}

// ChangePrice updates the asking price.
func (l *Listing) ChangePrice(price kernel.Price) error {
	return l.setPrice(price)
}

// ChangeDescription updates the description.
func (l *Listing) ChangeDescription(description string) {
	l.description = strings.TrimSpace(description)
}

// ChangeImages replaces the image references.
func (l *Listing) ChangeImages(images []string) {
	l.images = append([]string(nil), images...)
}

// ChangeStatus lets the owner move the listing between its owner-managed
// states (available, reserved, under_offer). Sold is managed exclusively by
// the order workflow and cannot be set directly.
func (l *Listing) ChangeStatus(status Status) error {
	if err := status.ValidateForType(l.listingType); err != nil {
		return err
	}
	if status == StatusSold || l.status == StatusSold {
		return errs.NewConflictError("status",
			"sold is managed by the order workflow")
	}

	l.status = status
	return nil
}

// checkStockStatusConsistency enforces the sold-iff-exhausted invariant when
// restoring from persistence.
func (l *Listing) checkStockStatusConsistency() error {
	switch l.listingType {
	case TypeCrop:
		if l.quantity.IsZero() != (l.status == StatusSold) {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("crop listing is %s with %s remaining", l.status, l.quantity))
		}
	case TypeLivestock:
		if (l.livestock.Count == 0) != (l.status == StatusSold) {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("livestock listing is %s with %d animals remaining", l.status, l.livestock.Count))
		}
	case TypeLand, TypeUnknown:
	}
	return nil
}

// wholeAnimalCount converts an order quantity to an animal count, rejecting
// fractional animals.
func wholeAnimalCount(amount float64) (int, error) {
	count := int(amount)
	if amount <= 0 || float64(count) != amount {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not a positive whole animal count", amount))
	}
	return count, nil
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	l.ownerID = ownerID
	return nil
}

func (l *Listing) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	l.title = title
	return nil
}

func (l *Listing) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.price = price
	return nil
}

func (l *Listing) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	l.location = location
	return nil
}
