package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the marketplace order workflow.
var (
	ErrNotAuthorized     = errors.New("not authorized")
	ErrConflict          = errors.New("conflict with current state")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// NotAuthorizedError indicates that the acting user is not permitted to
// perform the requested operation, for example a transition request from
// someone other than the order's seller.
type NotAuthorizedError struct {
	ActorID string
	Action  string
	Cause   error
}

// NewNotAuthorizedError creates a NotAuthorizedError without a cause.
func NewNotAuthorizedError(actorID, action string) *NotAuthorizedError {
	return &NotAuthorizedError{ActorID: actorID, Action: action}
}

// NewNotAuthorizedErrorWithCause creates a NotAuthorizedError wrapping the
// underlying cause.
func NewNotAuthorizedErrorWithCause(actorID, action string, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{ActorID: actorID, Action: action, Cause: cause}
}

func (e *NotAuthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s may not %s (cause: %s)",
			ErrNotAuthorized, e.ActorID, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s may not %s", ErrNotAuthorized, e.ActorID, e.Action))
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// ConflictError indicates that the operation cannot be applied to the current
// state of the object, for example accepting an order whose listing has
// already been sold, or an ownership mismatch.
type ConflictError struct {
	ParamName string
	Detail    string
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName, detail string) *ConflictError {
	return &ConflictError{ParamName: paramName, Detail: detail}
}

// NewConflictErrorWithCause creates a ConflictError wrapping the underlying
// cause.
func NewConflictErrorWithCause(paramName, detail string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Detail: detail, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s: %s (cause: %s)",
			ErrConflict, e.ParamName, e.Detail, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrConflict, e.ParamName, e.Detail))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InsufficientStockError indicates that an order requests more than the
// listing has available. The message names the shortfall and the unit.
type InsufficientStockError struct {
	Requested float64
	Available float64
	Unit      string
}

// NewInsufficientStockError creates an InsufficientStockError.
func NewInsufficientStockError(requested, available float64, unit string) *InsufficientStockError {
	return &InsufficientStockError{Requested: requested, Available: available, Unit: unit}
}

// Shortfall returns the amount by which the request exceeds availability.
func (e *InsufficientStockError) Shortfall() float64 {
	return e.Requested - e.Available
}

func (e *InsufficientStockError) Error() string {
	return sanitize(fmt.Sprintf("%s: requested %v %s, only %v %s available (short %v %s)",
		ErrInsufficientStock, e.Requested, e.Unit, e.Available, e.Unit, e.Shortfall(), e.Unit))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
