package commands

import (
	"context"
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"
)

// RegisterUserCommandHandler upserts user accounts on sign-in. The email
// is the identity key; a new account starts with the user role.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for sign-in upserts.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-in command and returns the stored user.
func (h RegisterUserCommandHandler) Handle(
	ctx context.Context, command RegisterUserCommand,
) (*user.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	now := time.Now().UTC()

	account, err := userRepo.GetByEmail(ctx, command.Email())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		account, err = user.NewUser(kernel.NewUUID(), command.Email(), command.DisplayName(), now)
		if err != nil {
			return nil, err
		}
		if err = userRepo.Add(ctx, account); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		account.RecordLogin(command.DisplayName(), now)
		if err = userRepo.Update(ctx, account); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return account, nil
}
