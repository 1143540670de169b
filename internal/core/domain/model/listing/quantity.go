package listing

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when attempting to use an
// improperly initialized Quantity. Quantities must be created via NewQuantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"quantity must be created via NewQuantity constructor")

// Unit is the measure a crop quantity is expressed in.
type Unit int

const (
	// UnitUnknown represents an invalid or undefined unit.
	UnitUnknown Unit = iota

	// UnitKg is kilograms.
	UnitKg

	// UnitQuintal is quintals (100 kg).
	UnitQuintal

	// UnitTon is metric tons.
	UnitTon

	// UnitBag is standard market bags.
	UnitBag
)

func getUnitStrings() map[Unit]string {
	return map[Unit]string{
		UnitUnknown: "Unknown",
		UnitKg:      "kg",
		UnitQuintal: "quintal",
		UnitTon:     "ton",
		UnitBag:     "bag",
	}
}

func getValidUnitStrings() map[Unit]string {
	//nolint:exhaustive // UnitUnknown is intentionally excluded as it's invalid
	return map[Unit]string{
		UnitKg:      "kg",
		UnitQuintal: "quintal",
		UnitTon:     "ton",
		UnitBag:     "bag",
	}
}

// UnitFromString parses the wire representation of a unit
// ("kg", "quintal", "ton", "bag"). Returns an error for anything else.
func UnitFromString(s string) (Unit, error) {
	for u, str := range getValidUnitStrings() {
		if str == s {
			return u, nil
		}
	}
	return UnitUnknown, errs.NewValueIsInvalidErrorWithCause("unit",
		fmt.Errorf("%q is not a valid quantity unit", s))
}

// Validate checks if the Unit value is valid.
func (u Unit) Validate() error {
	if _, ok := getValidUnitStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("unit",
			fmt.Errorf("%d is not a valid quantity unit", u))
	}
	return nil
}

// String returns the wire name of the unit or "Unknown" for invalid values.
// Implements fmt.Stringer.
func (u Unit) String() string {
	if str, ok := getUnitStrings()[u]; ok {
		return str
	}
	return "Unknown"
}

// Quantity is a non-negative amount of crop stock expressed in a unit.
// It is an immutable value object; arithmetic returns new values and never
// lets the amount go below zero.
type Quantity struct { //nolint:recvcheck //using for validation
	value float64
	unit  Unit
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity. The value must not be negative; zero is
// allowed because a fully allocated listing keeps its quantity record.
func NewQuantity(value float64, unit Unit) (Quantity, error) {
	if err := unit.Validate(); err != nil {
		return Quantity{}, err
	}
	if value < 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is negative", value))
	}

	return Quantity{
		value: value,
		unit:  unit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the amount.
func (q Quantity) Value() float64 {
	return q.value
}

// Unit returns the unit the amount is expressed in.
func (q Quantity) Unit() Unit {
	return q.unit
}

// IsZero reports whether the amount is exhausted.
func (q Quantity) IsZero() bool {
	return q.value == 0
}

// Subtract returns a new Quantity reduced by amount.
// Fails with InsufficientStockError, naming the shortfall and unit, when
// amount exceeds the current value.
func (q Quantity) Subtract(amount float64) (Quantity, error) {
	if amount <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", amount))
	}
	if amount > q.value {
		return Quantity{}, errs.NewInsufficientStockError(amount, q.value, q.unit.String())
	}

	return NewQuantity(q.value-amount, q.unit)
}

// Add returns a new Quantity increased by amount.
func (q Quantity) Add(amount float64) (Quantity, error) {
	if amount <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", amount))
	}

	return NewQuantity(q.value+amount, q.unit)
}

// String renders the quantity as "<value> <unit>". Implements fmt.Stringer.
func (q Quantity) String() string {
	return fmt.Sprintf("%v %s", q.value, q.unit)
}

// Validate checks that the Quantity was created through NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}
