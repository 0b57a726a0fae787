package mailer

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"
)

type Mail struct {
	To      []string
	Subject string
	HTML    string
}

// Client sends mail through Resend. The SDK handle is built lazily and
// reused for the process lifetime.
type Client struct {
	apiKey string
	from   string
	bcc    string

	once   sync.Once
	resend *resend.Client
}

func NewClientFromEnv() *Client {
	return &Client{
		apiKey: os.Getenv("RESEND_API_KEY"),
		from:   os.Getenv("MAIL_FROM"),
		bcc:    os.Getenv("MAIL_BCC"),
	}
}

func (c *Client) client() (*resend.Client, error) {
	if c.apiKey == "" {
		return nil, errors.New("email is not configured: set RESEND_API_KEY env var")
	}
	c.once.Do(func() {
		c.resend = resend.NewClient(c.apiKey)
	})
	return c.resend, nil
}

func (c *Client) SendMail(ctx context.Context, m Mail) (string, error) {
	client, err := c.client()
	if err != nil {
		return "", err
	}
	if c.from == "" {
		return "", errors.New("MAIL_FROM is required for sending emails via Resend")
	}

	req := &resend.SendEmailRequest{
		From:    c.from,
		To:      m.To,
		Subject: m.Subject,
		Html:    m.HTML,
	}
	if c.bcc != "" {
		for _, addr := range strings.Split(c.bcc, ",") {
			req.Bcc = append(req.Bcc, strings.TrimSpace(addr))
		}
	}

	sent, err := client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", err
	}

	log.Printf("Resend email queued: %s", sent.Id)
	return sent.Id, nil
}
