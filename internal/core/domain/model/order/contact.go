package order

import (
	"errors"
	"strings"

	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

// ErrBuyerContactIsNotConstructed is returned when attempting to use an
// improperly initialized BuyerContact.
var ErrBuyerContactIsNotConstructed = errs.NewValueIsRequiredError(
	"buyer contact must be created via NewBuyerContact constructor")

// BuyerContact is the contact card a buyer attaches to an order so the seller
// can reach them off-platform. All three fields are required.
type BuyerContact struct { //nolint:recvcheck //using for validation
	name  string
	email string
	phone string

	guard guard.ConstructorGuard
}

// NewBuyerContact creates a BuyerContact, requiring name, email, and phone.
func NewBuyerContact(name, email, phone string) (BuyerContact, error) {
	contact := BuyerContact{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contact.setName(name),
		contact.setEmail(email),
		contact.setPhone(phone),
	); err != nil {
		return BuyerContact{}, err
	}

	return contact, nil
}

// Name returns the buyer's contact name.
func (c BuyerContact) Name() string {
	return c.name
}

// Email returns the buyer's contact email.
func (c BuyerContact) Email() string {
	return c.email
}

// Phone returns the buyer's contact phone number.
func (c BuyerContact) Phone() string {
	return c.phone
}

// Validate checks that the BuyerContact was created through NewBuyerContact.
func (c BuyerContact) Validate() error {
	return c.guard.Validate(ErrBuyerContactIsNotConstructed)
}

func (c *BuyerContact) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("contact name")
	}
	c.name = name
	return nil
}

func (c *BuyerContact) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("contact email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("contact email")
	}
	c.email = email
	return nil
}

func (c *BuyerContact) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("contact phone")
	}
	c.phone = phone
	return nil
}
