package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"sync"

	"smartbiz-confirm/internal/domain"

	stripesdk "github.com/stripe/stripe-go/v78"
	stripeclient "github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

const EventCheckoutCompleted = "checkout.session.completed"

type CheckoutParams struct {
	OrderID       string
	CustomerEmail string
	Items         domain.LineItems
	Currency      string
	SuccessURL    string
	CancelURL     string
}

// WebhookEvent is the slice of a verified Stripe event the order flow cares
// about. SessionOrderID is set only for checkout completion events.
type WebhookEvent struct {
	Type           string
	SessionOrderID string
}

// Client wraps Stripe checkout session creation and webhook verification.
type Client struct {
	secretKey     string
	webhookSecret string

	once sync.Once
	api  *stripeclient.API
}

func NewClientFromEnv() *Client {
	return &Client{
		secretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		webhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}
}

func (c *Client) client() (*stripeclient.API, error) {
	if c.secretKey == "" {
		return nil, errors.New("missing STRIPE_SECRET_KEY")
	}
	c.once.Do(func() {
		c.api = &stripeclient.API{}
		c.api.Init(c.secretKey, nil)
	})
	return c.api, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (string, error) {
	api, err := c.client()
	if err != nil {
		return "", err
	}

	currency := p.Currency
	if currency == "" {
		currency = "inr"
	}

	lineItems := make([]*stripesdk.CheckoutSessionLineItemParams, 0, len(p.Items))
	for _, item := range p.Items {
		lineItems = append(lineItems, &stripesdk.CheckoutSessionLineItemParams{
			Quantity: stripesdk.Int64(int64(item.Quantity)),
			PriceData: &stripesdk.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripesdk.String(currency),
				UnitAmount: stripesdk.Int64(int64(math.Round(item.Price * 100))),
				ProductData: &stripesdk.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripesdk.String(item.Name),
				},
			},
		})
	}

	params := &stripesdk.CheckoutSessionParams{
		Mode:          stripesdk.String(string(stripesdk.CheckoutSessionModePayment)),
		CustomerEmail: stripesdk.String(p.CustomerEmail),
		LineItems:     lineItems,
		SuccessURL:    stripesdk.String(fmt.Sprintf("%s?orderId=%s&session_id={CHECKOUT_SESSION_ID}", p.SuccessURL, url.QueryEscape(p.OrderID))),
		CancelURL:     stripesdk.String(fmt.Sprintf("%s?orderId=%s", p.CancelURL, url.QueryEscape(p.OrderID))),
	}
	params.Context = ctx
	params.AddMetadata("orderId", p.OrderID)

	sess, err := api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}

	return sess.URL, nil
}

// ParseWebhook verifies the event signature and extracts the correlated
// order ID for checkout completion events.
func (c *Client) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	if c.webhookSecret == "" {
		return nil, errors.New("missing STRIPE_WEBHOOK_SECRET")
	}

	event, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
	if err != nil {
		return nil, err
	}

	parsed := &WebhookEvent{Type: string(event.Type)}
	if parsed.Type == EventCheckoutCompleted {
		var session stripesdk.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session: %v", err)
		}
		parsed.SessionOrderID = session.Metadata["orderId"]
	}

	return parsed, nil
}
