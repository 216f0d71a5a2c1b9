package commands

import (
	"context"
	"errors"

	"zapshift/internal/pkg/errs"
)

var ErrRiderNotFound = errors.New("rider not found")

// AssignRiderCommandHandler assigns riders to paid parcels. The parcel
// moves to the rider-assigned state and the rider becomes busy, in a
// single transaction so neither side can be observed half-updated.
type AssignRiderCommandHandler struct {
	uowFactory ParcelRiderUoWFactory
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(uowFactory ParcelRiderUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider assignment command.
// Loads both aggregates, marks the rider busy, and records the assignment
// on the parcel. Returns ErrParcelNotFound or ErrRiderNotFound when a
// side is missing, and a conflict error when the parcel is unpaid,
// already in transit, or the rider is not active.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, command AssignRiderCommand) error {
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
	riderRepo := uow.RiderRepository()

	assignedParcel, err := parcelRepo.Get(ctx, command.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotFound
	}
	if err != nil {
		return err
	}

	assignedRider, err := riderRepo.Get(ctx, command.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRiderNotFound
	}
	if err != nil {
		return err
	}

	if err = assignedRider.MarkBusy(); err != nil {
		return err
	}

	if err = assignedParcel.AssignRider(
		assignedRider.ID(), assignedRider.Email(), assignedRider.Name(),
	); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, assignedParcel); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, assignedRider); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
