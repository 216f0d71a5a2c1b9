package commands

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"
)

var ErrUserNotFound = errors.New("user not found")

// UpdateUserRoleCommandHandler applies admin role changes to user
// accounts.
type UpdateUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserRoleCommandHandler creates a handler for role changes.
func NewUpdateUserRoleCommandHandler(uowFactory UserUoWFactory) UpdateUserRoleCommandHandler {
	return UpdateUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role change command and returns the updated user.
// Returns ErrUserNotFound when no account exists for the email.
func (h UpdateUserRoleCommandHandler) Handle(
	ctx context.Context, command UpdateUserRoleCommand,
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

	account, err := userRepo.GetByEmail(ctx, command.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if err = account.ChangeRole(command.Role()); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return account, nil
}
