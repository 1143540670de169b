package kernel

import (
	"fmt"
	"strings"

	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when attempting to use an
// improperly initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location names the place a listing is offered from, as a district and state
// pair. It is an immutable value object; the zero value is invalid and fails
// validation.
//
// Example:
//
//	loc, err := kernel.NewLocation("Nashik", "Maharashtra")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Output: Nashik, Maharashtra
type Location struct { //nolint:recvcheck //using for validation
	district string
	state    string
	guard    guard.ConstructorGuard
}

// NewLocation creates a Location from a district and state.
// The district is required; the state may be empty. Surrounding whitespace is
// trimmed before validation.
func NewLocation(district, state string) (Location, error) {
	location := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := location.setDistrict(district); err != nil {
		return Location{}, err
	}
	location.state = strings.TrimSpace(state)

	return location, nil
}

// District returns the district name.
func (l Location) District() string {
	return l.district
}

// State returns the state name, which may be empty.
func (l Location) State() string {
	return l.state
}

// String renders the location as "district, state", or just the district when
// no state is set. Implements fmt.Stringer.
func (l Location) String() string {
	if l.state == "" {
		return l.district
	}
	return fmt.Sprintf("%s, %s", l.district, l.state)
}

// IsEqual reports whether two locations name the same district and state.
func (l Location) IsEqual(other Location) bool {
	return l.district == other.district && l.state == other.state
}

// Validate checks that the Location was created through NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) setDistrict(district string) error {
	district = strings.TrimSpace(district)
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}

	l.district = district
	return nil
}
