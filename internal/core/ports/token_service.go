package ports

import (
	"farmmarket/internal/core/domain/model/user"
)

// TokenService issues and verifies the signed tokens used for login.
type TokenService interface {
	// Issue creates a signed token carrying the user's identity and role.
	Issue(u *user.User) (string, error)

	// Verify parses and validates a token, returning the subject user ID.
	Verify(token string) (string, error)
}
