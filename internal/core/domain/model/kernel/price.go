package kernel

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via NewPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice constructor")

// Price is a positive rupee amount. It is an immutable value object; the zero
// value is invalid and fails validation.
type Price struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from a rupee amount.
// The amount must be greater than zero.
func NewPrice(amount float64) (Price, error) {
	price := Price{
		guard: guard.NewConstructorGuard(),
	}

	if err := price.setAmount(amount); err != nil {
		return Price{}, err
	}

	return price, nil
}

// Amount returns the rupee amount.
func (p Price) Amount() float64 {
	return p.amount
}

// String renders the price as "₹<amount>". Implements fmt.Stringer.
func (p Price) String() string {
	return fmt.Sprintf("₹%.2f", p.amount)
}

// IsEqual reports whether two prices carry the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// Validate checks that the Price was created through NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p *Price) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", amount))
	}

	p.amount = amount
	return nil
}
