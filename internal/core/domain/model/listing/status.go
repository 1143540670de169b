package listing

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Status represents the sale state of a listing.
//
// State transitions driven by the order workflow:
//
//	Available ──> Sold          (stock exhausted or land unit allocated)
//	Sold      ──> Available     (accepted order rejected/cancelled, stock restored)
//
// Reserved and UnderOffer are owner-managed states; UnderOffer is valid for
// land listings only.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the listing can take new orders.
	StatusAvailable

	// StatusReserved means the owner has put the listing on hold.
	StatusReserved

	// StatusUnderOffer means a land plot is being negotiated. Land only.
	StatusUnderOffer

	// StatusSold means the stock is exhausted or the land unit is allocated.
	StatusSold
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusAvailable:  "available",
		StatusReserved:   "reserved",
		StatusUnderOffer: "under_offer",
		StatusSold:       "sold",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable:  "available",
		StatusReserved:   "reserved",
		StatusUnderOffer: "under_offer",
		StatusSold:       "sold",
	}
}

// StatusFromString parses the wire representation of a listing status.
// Returns an error for anything else.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid listing status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid listing status", s))
	}
	return nil
}

// ValidateForType checks that the status is permitted for the listing type.
// UnderOffer is only meaningful for land.
func (s Status) ValidateForType(t Type) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == StatusUnderOffer && t != TypeLand {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is only valid for land listings", s))
	}
	return nil
}

// String returns the wire name of the status or "Unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
