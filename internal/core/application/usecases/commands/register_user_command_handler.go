package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"farmmarket/internal/core/domain/model/user"
	"farmmarket/internal/pkg/errs"
)

// RegisterUserCommandHandler handles the business logic for account creation.
// Hashes the password with bcrypt and refuses emails that are already
// registered.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the register user command.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err = userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return errs.NewConflictError("email", "already registered")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	aggregate, err := user.NewUser(
		cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(),
		string(hash), cmd.Role(),
	)
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
