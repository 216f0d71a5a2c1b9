package ports

import "context"

// PaymentIntent is the processor's handle for an in-progress charge.
// The client secret goes back to the browser; nothing else about the
// intent is stored server-side until the payment is confirmed.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// PaymentGateway is the outbound port to the third-party payment
// processor. Implementations decide their own retry policy; business
// rejections (declined card, bad amount) must surface immediately while
// transient transport failures may be retried.
type PaymentGateway interface {
	// CreateIntent registers a charge of amount (smallest currency unit)
	// with the processor and returns the intent handle.
	CreateIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error)
}
