package commands

import (
	"context"
	"time"

	"zapshift/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler registers new parcels. A tracking code is
// generated from the booking time, and the parcel starts unpaid and not
// collected.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel registration command. Builds the parcel
// aggregate and persists it within a transaction. Returns the created
// parcel so callers can surface its tracking code.
func (h CreateParcelCommandHandler) Handle(
	ctx context.Context, command CreateParcelCommand,
) (*parcel.Parcel, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	newParcel, err := parcel.NewParcel(
		command.ParcelID(),
		command.SenderEmail(),
		command.ReceiverName(),
		command.ReceiverAddr(),
		command.WeightGrams(),
		command.CostAmount(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}
