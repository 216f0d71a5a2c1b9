package commands

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

// SetRiderStatusCommandHandler applies admin decisions to riders. When a
// rider is approved (moved to active for the first time), the linked user
// account is granted the rider role in the same transaction so the two
// records can never disagree.
type SetRiderStatusCommandHandler struct {
	uowFactory RiderUserUoWFactory
}

// NewSetRiderStatusCommandHandler creates a handler for rider status
// decisions.
func NewSetRiderStatusCommandHandler(uowFactory RiderUserUoWFactory) SetRiderStatusCommandHandler {
	return SetRiderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider status command.
// Returns ErrRiderNotFound when the rider does not exist and a conflict
// error for transitions the rider lifecycle does not allow. A rider whose
// user account has not signed in yet can still be approved; the role
// grant is skipped and an admin assigns it later via the user role update.
func (h SetRiderStatusCommandHandler) Handle(ctx context.Context, command SetRiderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	userRepo := uow.UserRepository()

	trackedRider, err := riderRepo.Get(ctx, command.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRiderNotFound
	}
	if err != nil {
		return err
	}

	wasActive := trackedRider.Status() == rider.Active

	if err = trackedRider.ChangeStatus(command.Status()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, trackedRider); err != nil {
		return err
	}

	if command.Status() == rider.Active && !wasActive {
		if err = h.grantRiderRole(ctx, userRepo, trackedRider.Email()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h SetRiderStatusCommandHandler) grantRiderRole(
	ctx context.Context, userRepo ports.UserRepository, email string,
) error {
	account, err := userRepo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = account.ChangeRole(user.RoleRider); err != nil {
		return err
	}

	return userRepo.Update(ctx, account)
}
