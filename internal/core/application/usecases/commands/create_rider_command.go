package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var (
	ErrCreateRiderCommandIsNotConstructed = errors.New(
		"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
	)
	ErrRiderNameIsRequired  = errors.New("rider name is required")
	ErrRiderEmailIsRequired = errors.New("rider email is required")
)

// CreateRiderCommand represents a rider application. New riders start in
// the pending state and wait for an admin decision.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	name     string
	email    string
	phone    string
	district string

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand creates a command to register a rider application.
// Validates that the rider ID is valid and name and email are present.
func NewCreateRiderCommand(
	riderID kernel.UUID, name, email, phone, district string,
) (CreateRiderCommand, error) {
	riderCommand := CreateRiderCommand{
		phone:    phone,
		district: district,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		riderCommand.setRiderID(riderID),
		riderCommand.setName(name),
		riderCommand.setEmail(email),
	); err != nil {
		return CreateRiderCommand{}, err
	}

	return riderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// RiderID returns the unique identifier for the rider.
func (c CreateRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the applicant's name.
func (c CreateRiderCommand) Name() string {
	return c.name
}

// Email returns the applicant's email.
func (c CreateRiderCommand) Email() string {
	return c.email
}

// Phone returns the applicant's phone number.
func (c CreateRiderCommand) Phone() string {
	return c.phone
}

// District returns the district the rider wants to serve.
func (c CreateRiderCommand) District() string {
	return c.district
}

func (c *CreateRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *CreateRiderCommand) setName(name string) error {
	if name == "" {
		return ErrRiderNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRiderCommand) setEmail(email string) error {
	if email == "" {
		return ErrRiderEmailIsRequired
	}

	c.email = email
	return nil
}
