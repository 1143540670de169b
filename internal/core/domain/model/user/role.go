package user

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Role classifies a user as a seller of produce (farmer) or a purchaser
// (buyer). Orders require a buyer on one side and a farmer on the other.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Farmer sells crop, livestock, and land listings.
	Farmer

	// Buyer purchases from listings.
	Buyer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown: "Unknown",
		Farmer:  "farmer",
		Buyer:   "buyer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Farmer: "farmer",
		Buyer:  "buyer",
	}
}

// RoleFromString parses the wire representation of a role ("farmer", "buyer").
// Returns an error for anything else.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are Farmer and Buyer; Unknown and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role ("farmer", "buyer") or "Unknown"
// for invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
