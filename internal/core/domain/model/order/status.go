package order

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions so orders follow the
// seller-approval workflow.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──┬──> Completed
//	          │               ├──> Rejected   (restores inventory)
//	          │               └──> Cancelled  (restores inventory)
//	          ├──> Rejected
//	          └──> Cancelled
//
// Completed, Rejected, and Cancelled are terminal; no further transitions are
// allowed, including re-accepting a rejected order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order awaits the seller's decision.
	Pending

	// Accepted means the seller approved the order and inventory was deducted.
	Accepted

	// Rejected means the seller declined the order. Terminal.
	Rejected

	// Completed means the accepted order was fulfilled. Terminal.
	Completed

	// Cancelled means the order was called off. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Rejected:  "rejected",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		Rejected:  "rejected",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the wire representation of an order status.
// Returns an error for anything else.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Accepted, Rejected, Completed, and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "accepted", ...) or
// "Unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the state machine allows moving from the
// current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case Pending:
		return target == Accepted || target == Rejected || target == Cancelled
	case Accepted:
		return target == Completed || target == Rejected || target == Cancelled
	case Unknown, Rejected, Completed, Cancelled:
		return false
	}
	return false
}

// TransitionTo returns the target status when the transition is allowed.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) when the state machine forbids the move, including any
//     request against a terminal status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s -> %s is not a valid transition", s, target),
		)
	}

	return target, nil
}
