package services

import (
	"context"
	"fmt"
	"log"

	"smartbiz-confirm/internal/domain"
	"smartbiz-confirm/internal/infra/cloudinary"
	"smartbiz-confirm/internal/infra/mailer"
	"smartbiz-confirm/internal/infra/rabbitmq"
	"smartbiz-confirm/internal/infra/twilio"
	"smartbiz-confirm/internal/invoice"

	"golang.org/x/sync/errgroup"
)

// Notifier fans a confirmed order out to the notification channels. Every
// branch is best-effort: failures are logged and absorbed, never returned.
type Notifier struct {
	mailer         mailer.MailerInterface
	voice          twilio.VoiceMessagingInterface
	uploader       cloudinary.UploaderInterface
	publisher      rabbitmq.PublisherInterface
	defaultCountry string
}

func NewNotifier(m mailer.MailerInterface, v twilio.VoiceMessagingInterface, u cloudinary.UploaderInterface, p rabbitmq.PublisherInterface, defaultCountry string) *Notifier {
	return &Notifier{
		mailer:         m,
		voice:          v,
		uploader:       u,
		publisher:      p,
		defaultCountry: defaultCountry,
	}
}

var _ NotifierInterface = (*Notifier)(nil)

func (n *Notifier) Dispatch(ctx context.Context, order *domain.Order) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n.sendInvoiceEmail(ctx, order)
		return nil
	})
	g.Go(func() error {
		n.placeConfirmationCall(ctx, order)
		return nil
	})
	g.Go(func() error {
		n.sendWhatsApp(ctx, order)
		return nil
	})
	g.Go(func() error {
		n.publishOrderConfirmedEvent(ctx, order)
		return nil
	})
	g.Wait()
}

func (n *Notifier) sendInvoiceEmail(ctx context.Context, order *domain.Order) {
	if n.mailer == nil {
		return
	}

	htmlBody := invoice.BuildHTML(order.Input(), order.ID)
	if url := n.uploadInvoice(ctx, order); url != "" {
		htmlBody += fmt.Sprintf(`<p style="margin-top:16px">Download PDF: <a href="%s">%s</a></p>`, url, url)
	}

	_, err := n.mailer.SendMail(ctx, mailer.Mail{
		To:      []string{order.CustomerEmail},
		Subject: "Your Invoice - Order " + order.ID,
		HTML:    htmlBody,
	})
	if err != nil {
		log.Printf("Failed to send invoice email for order %s: %v", order.ID, err)
		return
	}
	log.Printf("Invoice email sent for order %s", order.ID)
}

func (n *Notifier) placeConfirmationCall(ctx context.Context, order *domain.Order) {
	if n.voice == nil || order.CustomerPhone == "" {
		return
	}

	phone, ok := twilio.ToE164(order.CustomerPhone, n.defaultCountry)
	if !ok {
		log.Printf("Skipping confirmation call for order %s: phone %q does not normalize", order.ID, order.CustomerPhone)
		return
	}

	err := n.voice.PlaceConfirmationCall(ctx, twilio.CallParams{
		ToE164:         phone,
		ConfirmationID: order.ID,
		CustomerName:   order.CustomerName,
	})
	if err != nil {
		log.Printf("Failed to place confirmation call for order %s: %v", order.ID, err)
		return
	}
	log.Printf("Confirmation call placed for order %s", order.ID)
}

func (n *Notifier) sendWhatsApp(ctx context.Context, order *domain.Order) {
	if n.voice == nil || order.CustomerPhone == "" {
		return
	}

	phone, ok := twilio.ToE164(order.CustomerPhone, n.defaultCountry)
	if !ok {
		log.Printf("Skipping WhatsApp message for order %s: phone %q does not normalize", order.ID, order.CustomerPhone)
		return
	}

	// An upload failure only costs the message its download link.
	invoiceURL := n.uploadInvoice(ctx, order)
	message := invoice.BuildWhatsAppMessage(order, invoiceURL)

	err := n.voice.SendWhatsAppMessage(ctx, twilio.WhatsAppParams{
		ToE164:  phone,
		Message: message,
	})
	if err != nil {
		log.Printf("Failed to send WhatsApp message for order %s: %v", order.ID, err)
		return
	}
	log.Printf("WhatsApp message sent for order %s", order.ID)
}

func (n *Notifier) uploadInvoice(ctx context.Context, order *domain.Order) string {
	if n.uploader == nil {
		return ""
	}

	pdf, err := invoice.GeneratePDF(order.Input(), order.ID)
	if err != nil {
		log.Printf("Failed to generate invoice PDF for order %s: %v", order.ID, err)
		return ""
	}

	url, err := n.uploader.UploadInvoicePDF(ctx, pdf, "invoice-"+order.ID)
	if err != nil {
		log.Printf("Failed to upload invoice PDF for order %s: %v", order.ID, err)
		return ""
	}
	return url
}

func (n *Notifier) publishOrderConfirmedEvent(ctx context.Context, order *domain.Order) {
	if n.publisher == nil {
		return
	}

	evt := domain.OrderConfirmedEvent{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Total:         order.Total,
		CreatedAt:     order.CreatedAt,
	}

	if err := n.publisher.Publish(ctx, "order.confirmed", evt); err != nil {
		log.Printf("Failed to publish order.confirmed event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Published order.confirmed event for order %s", order.ID)
	}
}
