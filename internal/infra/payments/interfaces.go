package payments

import "context"

type CheckoutInterface interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (string, error)
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

var _ CheckoutInterface = (*Client)(nil)
