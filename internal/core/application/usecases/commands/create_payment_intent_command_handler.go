package commands

import (
	"context"

	"zapshift/internal/core/ports"
)

// CreatePaymentIntentCommandHandler opens payment intents through the
// external processor gateway. No local state changes here; the parcel is
// marked paid later, when the confirmation arrives.
type CreatePaymentIntentCommandHandler struct {
	gateway ports.PaymentGateway
}

// NewCreatePaymentIntentCommandHandler creates a handler for payment
// intents.
func NewCreatePaymentIntentCommandHandler(gateway ports.PaymentGateway) CreatePaymentIntentCommandHandler {
	return CreatePaymentIntentCommandHandler{
		gateway: gateway,
	}
}

// Handle processes the payment intent command and returns the processor's
// intent, including the client secret the frontend needs to confirm the
// charge.
func (h CreatePaymentIntentCommandHandler) Handle(
	ctx context.Context, command CreatePaymentIntentCommand,
) (*ports.PaymentIntent, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.gateway.CreateIntent(ctx, command.Amount(), command.Currency())
}
