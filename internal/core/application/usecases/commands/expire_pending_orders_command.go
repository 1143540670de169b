package commands

import (
	"errors"
	"time"

	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand represents a request to cancel pending orders
// the seller never responded to within the given age.
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand creates a command to expire stale orders.
func NewExpirePendingOrdersCommand(maxAge time.Duration) (ExpirePendingOrdersCommand, error) {
	if maxAge <= 0 {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsInvalidError("maxAge")
	}

	return ExpirePendingOrdersCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

// MaxAge returns how old a pending order may get before it is cancelled.
func (c ExpirePendingOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}
