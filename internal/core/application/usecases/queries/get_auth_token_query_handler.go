package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/user"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetAuthTokenQueryHandler verifies login credentials against the stored
// bcrypt hash and issues a token via the TokenService.
//
// A wrong email and a wrong password both come back as the same
// NotAuthorized error, so the login endpoint does not leak which accounts
// exist.
type GetAuthTokenQueryHandler struct {
	db           *gorm.DB
	tokenService ports.TokenService
}

// NewGetAuthTokenQueryHandler creates a handler for login queries.
func NewGetAuthTokenQueryHandler(db *gorm.DB, tokenService ports.TokenService) GetAuthTokenQueryHandler {
	return GetAuthTokenQueryHandler{db: db, tokenService: tokenService}
}

// Handle executes the login.
func (h GetAuthTokenQueryHandler) Handle(
	ctx context.Context,
	query GetAuthTokenQuery,
) (GetAuthTokenQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAuthTokenQueryResponse{}, err
	}

	var id uuid.UUID
	var name, email, phone, passwordHash string
	var role int
	var createdAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, phone, password_hash, role, created_at
		FROM users
		WHERE email = ?
	`, query.email).Row()
	if err := row.Scan(&id, &name, &email, &phone, &passwordHash, &role, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAuthTokenQueryResponse{}, errs.NewNotAuthorizedError(query.email, "log in")
		}
		return GetAuthTokenQueryResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.password)); err != nil {
		return GetAuthTokenQueryResponse{}, errs.NewNotAuthorizedError(query.email, "log in")
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAuthTokenQueryResponse{}, err
	}

	account, err := user.RestoreUser(userID, name, email, phone, passwordHash, user.Role(role), createdAt)
	if err != nil {
		return GetAuthTokenQueryResponse{}, err
	}

	token, err := h.tokenService.Issue(account)
	if err != nil {
		return GetAuthTokenQueryResponse{}, err
	}

	return GetAuthTokenQueryResponse{
		Token:  token,
		UserID: account.ID().String(),
		Name:   account.Name(),
		Role:   account.Role().String(),
	}, nil
}
