package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrSenderEmailIsRequired  = errors.New("sender email is required")
	ErrReceiverNameIsRequired = errors.New("receiver name is required")
	ErrReceiverAddrIsRequired = errors.New("receiver address is required")
	ErrWeightIsInvalid        = errors.New("weight must be greater than 0")
	ErrCostIsInvalid          = errors.New("cost must be greater than 0")
)

// CreateParcelCommand represents a request to register a new parcel for
// delivery. The cost is computed by the caller and carried here in the
// smallest currency unit.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	senderEmail  string
	receiverName string
	receiverAddr string
	weightGrams  int
	costAmount   int64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates that the parcel ID is valid, sender and receiver details are
// present, and weight and cost are positive.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	senderEmail string,
	receiverName string,
	receiverAddr string,
	weightGrams int,
	costAmount int64,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setSenderEmail(senderEmail),
		parcelCommand.setReceiverName(receiverName),
		parcelCommand.setReceiverAddr(receiverAddr),
		parcelCommand.setWeightGrams(weightGrams),
		parcelCommand.setCostAmount(costAmount),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// SenderEmail returns the email of the user who booked the parcel.
func (c CreateParcelCommand) SenderEmail() string {
	return c.senderEmail
}

// ReceiverName returns the recipient's name.
func (c CreateParcelCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverAddr returns the recipient's address.
func (c CreateParcelCommand) ReceiverAddr() string {
	return c.receiverAddr
}

// WeightGrams returns the parcel weight in grams.
func (c CreateParcelCommand) WeightGrams() int {
	return c.weightGrams
}

// CostAmount returns the delivery cost in the smallest currency unit.
func (c CreateParcelCommand) CostAmount() int64 {
	return c.costAmount
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setSenderEmail(senderEmail string) error {
	if senderEmail == "" {
		return ErrSenderEmailIsRequired
	}

	c.senderEmail = senderEmail
	return nil
}

func (c *CreateParcelCommand) setReceiverName(receiverName string) error {
	if receiverName == "" {
		return ErrReceiverNameIsRequired
	}

	c.receiverName = receiverName
	return nil
}

func (c *CreateParcelCommand) setReceiverAddr(receiverAddr string) error {
	if receiverAddr == "" {
		return ErrReceiverAddrIsRequired
	}

	c.receiverAddr = receiverAddr
	return nil
}

func (c *CreateParcelCommand) setWeightGrams(weightGrams int) error {
	if weightGrams <= 0 {
		return ErrWeightIsInvalid
	}

	c.weightGrams = weightGrams
	return nil
}

func (c *CreateParcelCommand) setCostAmount(costAmount int64) error {
	if costAmount <= 0 {
		return ErrCostIsInvalid
	}

	c.costAmount = costAmount
	return nil
}
