package commands

import (
	"context"
	"errors"

	"zapshift/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler moves parcels along the delivery
// lifecycle. Transitions that skip stages or leave a final state are
// rejected by the parcel aggregate.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// status changes.
func NewUpdateDeliveryStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery status change command.
// Re-submitting the parcel's current status succeeds without a write.
// Returns ErrParcelNotFound when the parcel does not exist and a conflict
// error for transitions the lifecycle does not allow.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context, command UpdateDeliveryStatusCommand,
) error {
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

	trackedParcel, err := parcelRepo.Get(ctx, command.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotFound
	}
	if err != nil {
		return err
	}

	changed, err := trackedParcel.ChangeDeliveryStatus(command.Status())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = parcelRepo.Update(ctx, trackedParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
