package commands

import (
	"errors"
	"strings"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/user"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

// RegisterUserCommand represents a request to create a new account.
// Carries the plain password; the handler hashes it before anything is
// persisted.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	phone    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user.
func NewRegisterUserCommand(
	userID kernel.UUID,
	name, email, phone, password string,
	role user.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Phone returns the contact phone, possibly empty.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Password returns the plain password to be hashed.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the account role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
