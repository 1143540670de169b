// Package auth implements token issuing and verification for the HTTP API
// using HS256-signed JWTs.
package auth

import (
	"errors"
	"fmt"
	"time"

	"farmmarket/internal/core/domain/model/user"
	"farmmarket/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// JwtTokenService issues and verifies HS256 JWTs. The subject claim carries
// the user ID; the role claim carries the wire name of the user's role.
type JwtTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJwtTokenService creates a token service signing with the given secret.
// Tokens expire after ttl.
func NewJwtTokenService(secret string, ttl time.Duration) (*JwtTokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}

	return &JwtTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for the user with subject, role, issued-at and expiry
// claims.
func (s *JwtTokenService) Issue(u *user.User) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  u.ID().String(),
		"role": u.Role().String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token and returns the user ID it was issued
// for. Expired, malformed, or foreign-signed tokens come back as
// NotAuthorized errors.
func (s *JwtTokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errs.NewNotAuthorizedErrorWithCause("token", "authenticate", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errs.NewNotAuthorizedErrorWithCause("token", "authenticate",
			errors.New("invalid token claims"))
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", errs.NewNotAuthorizedErrorWithCause("token", "authenticate",
			errors.New("token has no subject"))
	}

	return subject, nil
}
