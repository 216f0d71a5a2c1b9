package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a request to move a parcel to a
// new point in its delivery lifecycle.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	status   parcel.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to change a parcel's
// delivery status. Validates that the target status is a known one.
func NewUpdateDeliveryStatusCommand(
	parcelID kernel.UUID, status parcel.DeliveryStatus,
) (UpdateDeliveryStatusCommand, error) {
	statusCommand := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setParcelID(parcelID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateDeliveryStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Status returns the target delivery status.
func (c UpdateDeliveryStatusCommand) Status() parcel.DeliveryStatus {
	return c.status
}

func (c *UpdateDeliveryStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(status parcel.DeliveryStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
