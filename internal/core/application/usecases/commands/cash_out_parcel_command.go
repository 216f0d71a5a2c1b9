package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var (
	ErrCashOutParcelCommandIsNotConstructed = errors.New(
		"CashOutParcelCommand must be created via NewCashOutParcelCommand constructor",
	)
	ErrCashoutAmountIsInvalid = errors.New("cashout amount must be greater than 0")
)

// CashOutParcelCommand represents a rider's request to cash out earnings
// for a delivered parcel.
type CashOutParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	amount   int64

	guard guard.ConstructorGuard
}

// NewCashOutParcelCommand creates a command to cash out a delivered parcel.
func NewCashOutParcelCommand(parcelID kernel.UUID, amount int64) (CashOutParcelCommand, error) {
	cashoutCommand := CashOutParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cashoutCommand.setParcelID(parcelID),
		cashoutCommand.setAmount(amount),
	); err != nil {
		return CashOutParcelCommand{}, err
	}

	return cashoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CashOutParcelCommand) Validate() error {
	return c.guard.Validate(ErrCashOutParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to cash out.
func (c CashOutParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Amount returns the cashout amount in the smallest currency unit.
func (c CashOutParcelCommand) Amount() int64 {
	return c.amount
}

func (c *CashOutParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CashOutParcelCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return ErrCashoutAmountIsInvalid
	}

	c.amount = amount
	return nil
}
