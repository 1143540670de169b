package queries

import (
	"errors"
	"strings"

	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrGetAuthTokenQueryIsNotConstructed = errors.New(
	"GetAuthTokenQuery must be created via NewGetAuthTokenQuery constructor",
)

// GetAuthTokenQuery authenticates a user by email and password and produces
// a signed token for subsequent requests.
//
// Example:
//
//	query, err := NewGetAuthTokenQuery("asha@example.com", "s3cret-pass")
//	if err != nil {
//	    return err
//	}
//
//	auth, err := NewGetAuthTokenQueryHandler(db, tokenService).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println("token:", auth.Token)
type GetAuthTokenQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewGetAuthTokenQuery creates a login query. Both fields are required; the
// credentials themselves are checked by the handler.
func NewGetAuthTokenQuery(email, password string) (GetAuthTokenQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return GetAuthTokenQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return GetAuthTokenQuery{}, errs.NewValueIsRequiredError("password")
	}

	return GetAuthTokenQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuthTokenQuery) Validate() error {
	return q.guard.Validate(ErrGetAuthTokenQueryIsNotConstructed)
}

// GetAuthTokenQueryResponse carries the issued token and the authenticated
// user's public identity.
type GetAuthTokenQueryResponse struct {
	Token  string
	UserID string
	Name   string
	Role   string
}
