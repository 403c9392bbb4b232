package payments

import "context"

// Charge describes a payment to capture. Amounts are in the currency's minor
// units (cents), already rounded by the pricing core.
type Charge struct {
	AmountMinor   int64
	Currency      string
	PaymentMethod string
	CustomerRef   string
	Description   string
}

// Provider captures and refunds payments through an external processor.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Capture charges the customer and returns the processor's payment reference.
	Capture(ctx context.Context, charge Charge) (string, error)

	// Refund returns a captured payment in full.
	Refund(ctx context.Context, paymentRef string) error
}
