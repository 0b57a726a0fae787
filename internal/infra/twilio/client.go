package twilio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	twiliosdk "github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type CallParams struct {
	ToE164         string
	ConfirmationID string
	CustomerName   string
}

type WhatsAppParams struct {
	ToE164   string
	Message  string
	MediaURL string
}

// Client wraps the Twilio REST client for voice and WhatsApp dispatch. The
// underlying SDK handle is built lazily and reused for the process lifetime.
type Client struct {
	accountSID   string
	authToken    string
	fromNumber   string
	whatsappFrom string
	voice        string

	once sync.Once
	rest *twiliosdk.RestClient
}

func NewClientFromEnv() *Client {
	voice := os.Getenv("TWILIO_VOICE")
	if voice == "" {
		voice = "Polly.Joanna"
	}
	return &Client{
		accountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		authToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		fromNumber:   os.Getenv("TWILIO_FROM_NUMBER"),
		whatsappFrom: os.Getenv("TWILIO_WHATSAPP_FROM"),
		voice:        voice,
	}
}

func (c *Client) client() (*twiliosdk.RestClient, error) {
	if c.accountSID == "" || c.authToken == "" {
		return nil, errors.New("missing Twilio credentials: set TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN")
	}
	c.once.Do(func() {
		c.rest = twiliosdk.NewRestClientWithParams(twiliosdk.ClientParams{
			Username: c.accountSID,
			Password: c.authToken,
		})
	})
	return c.rest, nil
}

// PlaceConfirmationCall speaks the confirmation out via inline TwiML, so no
// public callback URL is needed.
func (c *Client) PlaceConfirmationCall(ctx context.Context, p CallParams) error {
	if c.fromNumber == "" {
		return errors.New("missing TWILIO_FROM_NUMBER env var")
	}

	rest, err := c.client()
	if err != nil {
		return err
	}

	greeting := "Hello"
	if p.CustomerName != "" {
		greeting = "Hello " + p.CustomerName
	}
	message := fmt.Sprintf("%s. Your order %s has been confirmed. Thank you for choosing Smart Biz Confirm.", greeting, p.ConfirmationID)
	twiml := fmt.Sprintf(`<Response><Say voice="%s">%s</Say></Response>`, c.voice, message)

	params := &twilioapi.CreateCallParams{}
	params.SetTo(p.ToE164)
	params.SetFrom(c.fromNumber)
	params.SetTwiml(twiml)

	_, err = rest.Api.CreateCall(params)
	return err
}

func (c *Client) SendWhatsAppMessage(ctx context.Context, p WhatsAppParams) error {
	if c.whatsappFrom == "" {
		return errors.New("missing TWILIO_WHATSAPP_FROM env var")
	}

	rest, err := c.client()
	if err != nil {
		return err
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo("whatsapp:" + p.ToE164)
	params.SetFrom(c.whatsappFrom)
	params.SetBody(p.Message)
	if p.MediaURL != "" {
		params.SetMediaUrl([]string{p.MediaURL})
	}

	_, err = rest.Api.CreateMessage(params)
	return err
}
