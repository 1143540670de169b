package user

import (
	"errors"
	"strings"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User represents an account on the marketplace: a farmer who owns listings
// or a buyer who places orders against them.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name and a plausible email address
//   - Must carry a valid role (farmer or buyer)
//   - Can only be created through NewUser or RestoreUser
type User struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	passwordHash string
	role         Role
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a new User with validation. The password hash must already
// be computed by the caller; the domain model never sees plaintext passwords.
func NewUser(id kernel.UUID, name, email, phone, passwordHash string, role Role) (*User, error) {
	user := &User{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	user.phone = strings.TrimSpace(phone)
	return user, nil
}

// RestoreUser reconstructs a User from persistence, bypassing creation-time
// defaults but re-running all invariant checks.
func RestoreUser(id kernel.UUID, name, email, phone, passwordHash string, role Role, createdAt time.Time) (*User, error) {
	user, err := NewUser(id, name, email, phone, passwordHash, role)
	if err != nil {
		return nil, err
	}

	user.createdAt = createdAt
	return user, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Phone returns the user's phone number, which may be empty.
func (u *User) Phone() string {
	return u.phone
}

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's marketplace role.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns when the account was registered.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// IsFarmer reports whether the user sells on the marketplace.
func (u *User) IsFarmer() bool {
	return u.role == Farmer
}

// IsBuyer reports whether the user purchases on the marketplace.
func (u *User) IsBuyer() bool {
	return u.role == Buyer
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
