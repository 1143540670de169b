package listing

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Type discriminates the three listing variants. Crop and livestock listings
// carry divisible quantities; a land listing is a single sellable unit.
type Type int

const (
	// TypeUnknown represents an invalid or undefined listing type.
	TypeUnknown Type = iota

	// TypeCrop is harvested produce sold by weight or bag.
	TypeCrop

	// TypeLivestock is animals sold by head count.
	TypeLivestock

	// TypeLand is a plot sold as one unit.
	TypeLand
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:   "Unknown",
		TypeCrop:      "crop",
		TypeLivestock: "livestock",
		TypeLand:      "land",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeCrop:      "crop",
		TypeLivestock: "livestock",
		TypeLand:      "land",
	}
}

// TypeFromString parses the wire representation of a listing type
// ("crop", "livestock", "land"). Returns an error for anything else.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("listingType",
		fmt.Errorf("%q is not a valid listing type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("listingType",
			fmt.Errorf("%d is not a valid listing type", t))
	}
	return nil
}

// String returns the wire name of the type or "Unknown" for invalid values.
// Implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
