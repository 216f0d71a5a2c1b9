package commands

import (
	"context"
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/pkg/errs"
)

var ErrParcelNotFound = errors.New("parcel not found")

// ConfirmPaymentCommandHandler records completed payments. Marking the
// parcel paid and appending the payment history entry happen in one
// transaction, and replayed confirmations with a known transaction ID
// return the original record instead of failing or double-charging.
type ConfirmPaymentCommandHandler struct {
	uowFactory ParcelPaymentUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(uowFactory ParcelPaymentUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment confirmation command.
// If the transaction ID was already recorded the stored payment is
// returned unchanged. Otherwise the parcel moves to paid and the payment
// is appended, atomically. Returns ErrParcelNotFound when the parcel does
// not exist and a conflict error when the parcel is already paid under a
// different transaction.
func (h ConfirmPaymentCommandHandler) Handle(
	ctx context.Context, command ConfirmPaymentCommand,
) (*payment.Payment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	parcelRepo := uow.ParcelRepository()

	existing, err := paymentRepo.GetByTransactionID(ctx, command.TransactionID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	paidParcel, err := parcelRepo.Get(ctx, command.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrParcelNotFound
	}
	if err != nil {
		return nil, err
	}

	if err = paidParcel.MarkPaid(); err != nil {
		return nil, err
	}

	record, err := payment.NewPayment(
		kernel.NewUUID(),
		paidParcel.ID(),
		command.PayerEmail(),
		command.Amount(),
		command.Currency(),
		command.Method(),
		command.TransactionID(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, paidParcel); err != nil {
		return nil, err
	}

	if err = paymentRepo.Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
