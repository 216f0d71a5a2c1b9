package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents a request to assign a rider to a paid
// parcel. The rider's contact details are resolved from the rider record,
// not supplied by the caller.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	riderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign a rider to a parcel.
func NewAssignRiderCommand(parcelID, riderID kernel.UUID) (AssignRiderCommand, error) {
	assignCommand := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setParcelID(parcelID),
		assignCommand.setRiderID(riderID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to assign.
func (c AssignRiderCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RiderID returns the identifier of the rider being assigned.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *AssignRiderCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
