package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/guard"
)

var ErrSetRiderStatusCommandIsNotConstructed = errors.New(
	"SetRiderStatusCommand must be created via NewSetRiderStatusCommand constructor",
)

// SetRiderStatusCommand represents an admin decision on a rider:
// approval, rejection, or releasing a busy rider back to active.
type SetRiderStatusCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	status  rider.Status

	guard guard.ConstructorGuard
}

// NewSetRiderStatusCommand creates a command to change a rider's status.
func NewSetRiderStatusCommand(riderID kernel.UUID, status rider.Status) (SetRiderStatusCommand, error) {
	statusCommand := SetRiderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setRiderID(riderID),
		statusCommand.setStatus(status),
	); err != nil {
		return SetRiderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRiderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderStatusCommandIsNotConstructed)
}

// RiderID returns the identifier of the rider to update.
func (c SetRiderStatusCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Status returns the target rider status.
func (c SetRiderStatusCommand) Status() rider.Status {
	return c.status
}

func (c *SetRiderStatusCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *SetRiderStatusCommand) setStatus(status rider.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
