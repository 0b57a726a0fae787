package mailer

import "context"

type MailerInterface interface {
	SendMail(ctx context.Context, m Mail) (string, error)
}

var _ MailerInterface = (*Client)(nil)
