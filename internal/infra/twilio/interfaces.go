package twilio

import "context"

type VoiceMessagingInterface interface {
	PlaceConfirmationCall(ctx context.Context, p CallParams) error
	SendWhatsAppMessage(ctx context.Context, p WhatsAppParams) error
}

var _ VoiceMessagingInterface = (*Client)(nil)
