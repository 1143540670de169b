package http

import (
	"errors"
	"net/http"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/user"
	"farmmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type registerUserResponse struct {
	ID string `json:"id"`
}

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req registerUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return domainError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Name, req.Email, req.Phone, req.Password, role)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, registerUserResponse{ID: userID.String()})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Login handles POST /api/v1/auth/login. Failed logins come back as 401
// regardless of whether the email exists.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewGetAuthTokenQuery(req.Email, req.Password)
	if err != nil {
		return domainError(ctx, err)
	}

	auth, err := s.getAuthTokenHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrNotAuthorized) {
			return unauthorized(ctx, err)
		}
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token:  auth.Token,
		UserID: auth.UserID,
		Name:   auth.Name,
		Role:   auth.Role,
	})
}
