package commands

import (
	"context"
	"errors"
	"time"

	"zapshift/internal/pkg/errs"
)

// CashOutParcelCommandHandler records rider cashouts for delivered
// parcels. A parcel can be cashed out once. Repeating the request is a
// conflict, not a second payout.
type CashOutParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCashOutParcelCommandHandler creates a handler for parcel cashouts.
func NewCashOutParcelCommandHandler(uowFactory ParcelUoWFactory) CashOutParcelCommandHandler {
	return CashOutParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cashout command.
// Returns ErrParcelNotFound when the parcel does not exist and a conflict
// error when the parcel is not delivered yet or was already cashed out.
func (h CashOutParcelCommandHandler) Handle(ctx context.Context, command CashOutParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	cashedParcel, err := parcelRepo.Get(ctx, command.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotFound
	}
	if err != nil {
		return err
	}

	if err = cashedParcel.CashOut(command.Amount(), time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, cashedParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
