package commands

import (
	"errors"
	"strings"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrCreateListingCommandIsNotConstructed = errors.New(
		"CreateListingCommand must be created via NewCreateListingCommand constructor",
	)
	ErrDetailsMismatch = errors.New("listing details must match the listing type")
)

// CreateListingCommand represents a request to publish a new listing.
// Exactly one detail block must be set and it must match the listing type;
// crop listings additionally carry the quantity on offer.
type CreateListingCommand struct { //nolint:recvcheck //using for validation
	listingID   kernel.UUID
	ownerID     kernel.UUID
	listingType listing.Type
	title       string
	description string
	price       kernel.Price
	location    kernel.Location
	images      []string

	quantity  *listing.Quantity
	crop      *listing.CropDetails
	livestock *listing.LivestockDetails
	land      *listing.LandDetails

	guard guard.ConstructorGuard
}

// NewCreateListingCommand creates a command to publish a listing.
// Validates identifiers, title, price, location, and that the detail block
// matches the listing type.
func NewCreateListingCommand(
	listingID, ownerID kernel.UUID,
	listingType listing.Type,
	title, description string,
	price kernel.Price,
	location kernel.Location,
	images []string,
	quantity *listing.Quantity,
	crop *listing.CropDetails,
	livestock *listing.LivestockDetails,
	land *listing.LandDetails,
) (CreateListingCommand, error) {
	cmd := CreateListingCommand{
		description: strings.TrimSpace(description),
		images:      images,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setOwnerID(ownerID),
		cmd.setType(listingType),
		cmd.setTitle(title),
		cmd.setPrice(price),
		cmd.setLocation(location),
	); err != nil {
		return CreateListingCommand{}, err
	}

	if err := cmd.setDetails(listingType, quantity, crop, livestock, land); err != nil {
		return CreateListingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

// ListingID returns the identifier for the new listing.
func (c CreateListingCommand) ListingID() kernel.UUID {
	return c.listingID
}

// OwnerID returns the identifier of the publishing user.
func (c CreateListingCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Type returns the listing variant being published.
func (c CreateListingCommand) Type() listing.Type {
	return c.listingType
}

// Title returns the listing title.
func (c CreateListingCommand) Title() string {
	return c.title
}

// Description returns the listing description.
func (c CreateListingCommand) Description() string {
	return c.description
}

// Price returns the asking price.
func (c CreateListingCommand) Price() kernel.Price {
	return c.price
}

// Location returns where the goods or land are.
func (c CreateListingCommand) Location() kernel.Location {
	return c.location
}

// Images returns the image URLs attached to the listing.
func (c CreateListingCommand) Images() []string {
	return c.images
}

// Quantity returns the stock on offer. Set for crop listings only.
func (c CreateListingCommand) Quantity() *listing.Quantity {
	return c.quantity
}

// Crop returns the crop detail block, if this is a crop listing.
func (c CreateListingCommand) Crop() *listing.CropDetails {
	return c.crop
}

// Livestock returns the livestock detail block, if this is a livestock listing.
func (c CreateListingCommand) Livestock() *listing.LivestockDetails {
	return c.livestock
}

// Land returns the land detail block, if this is a land listing.
func (c CreateListingCommand) Land() *listing.LandDetails {
	return c.land
}

func (c *CreateListingCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}

	c.listingID = listingID
	return nil
}

func (c *CreateListingCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateListingCommand) setType(listingType listing.Type) error {
	if err := listingType.Validate(); err != nil {
		return err
	}

	c.listingType = listingType
	return nil
}

func (c *CreateListingCommand) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateListingCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateListingCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CreateListingCommand) setDetails(
	listingType listing.Type,
	quantity *listing.Quantity,
	crop *listing.CropDetails,
	livestock *listing.LivestockDetails,
	land *listing.LandDetails,
) error {
	switch listingType {
	case listing.TypeCrop:
		if crop == nil || quantity == nil || livestock != nil || land != nil {
			return ErrDetailsMismatch
		}
		c.quantity = quantity
		c.crop = crop
	case listing.TypeLivestock:
		if livestock == nil || crop != nil || land != nil {
			return ErrDetailsMismatch
		}
		c.livestock = livestock
	case listing.TypeLand:
		if land == nil || crop != nil || livestock != nil {
			return ErrDetailsMismatch
		}
		c.land = land
	default:
		return ErrDetailsMismatch
	}

	return nil
}
