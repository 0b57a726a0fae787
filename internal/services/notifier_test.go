package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smartbiz-confirm/internal/domain"
	"smartbiz-confirm/internal/infra/mailer"
	"smartbiz-confirm/internal/infra/twilio"
	"smartbiz-confirm/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotifier_DispatchAllChannels(t *testing.T) {
	mockMailer := new(mocks.MockMailer)
	mockVoice := new(mocks.MockVoiceMessaging)
	mockUploader := new(mocks.MockUploader)
	mockPublisher := new(mocks.MockPublisher)

	order := CreateMockOrder(TestOrderID, domain.StatusConfirmed, TestTotal)

	mockUploader.On("UploadInvoicePDF", mock.Anything, mock.Anything, "invoice-"+TestOrderID).
		Return("https://res.cloudinary.com/demo/invoices/invoice.pdf", nil)
	mockMailer.On("SendMail", mock.Anything, mock.MatchedBy(func(m mailer.Mail) bool {
		return m.To[0] == TestCustomerEmail &&
			m.Subject == "Your Invoice - Order "+TestOrderID &&
			strings.Contains(m.HTML, "https://res.cloudinary.com/demo/invoices/invoice.pdf")
	})).Return("msg_123", nil)
	mockVoice.On("PlaceConfirmationCall", mock.Anything, mock.MatchedBy(func(p twilio.CallParams) bool {
		return p.ToE164 == "+919876543210" && p.ConfirmationID == TestOrderID
	})).Return(nil)
	mockVoice.On("SendWhatsAppMessage", mock.Anything, mock.MatchedBy(func(p twilio.WhatsAppParams) bool {
		return p.ToE164 == "+919876543210" && strings.Contains(p.Message, TestOrderID)
	})).Return(nil)
	mockPublisher.On("Publish", mock.Anything, "order.confirmed", mock.Anything).Return(nil)

	notifier := NewNotifier(mockMailer, mockVoice, mockUploader, mockPublisher, "+91")
	notifier.Dispatch(context.Background(), order)

	mockMailer.AssertExpectations(t)
	mockVoice.AssertExpectations(t)
	mockUploader.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestNotifier_DispatchSkipsPhoneChannelsWhenNotNormalizable(t *testing.T) {
	mockMailer := new(mocks.MockMailer)
	mockVoice := new(mocks.MockVoiceMessaging)
	mockPublisher := new(mocks.MockPublisher)

	order := CreateMockOrder(TestOrderID, domain.StatusConfirmed, TestTotal)
	order.CustomerPhone = "abc"

	mockMailer.On("SendMail", mock.Anything, mock.Anything).Return("msg_123", nil)
	mockPublisher.On("Publish", mock.Anything, "order.confirmed", mock.Anything).Return(nil)

	notifier := NewNotifier(mockMailer, mockVoice, nil, mockPublisher, "+91")
	notifier.Dispatch(context.Background(), order)

	mockVoice.AssertNotCalled(t, "PlaceConfirmationCall", mock.Anything, mock.Anything)
	mockVoice.AssertNotCalled(t, "SendWhatsAppMessage", mock.Anything, mock.Anything)
	mockMailer.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestNotifier_DispatchSurvivesChannelFailures(t *testing.T) {
	mockMailer := new(mocks.MockMailer)
	mockVoice := new(mocks.MockVoiceMessaging)
	mockUploader := new(mocks.MockUploader)
	mockPublisher := new(mocks.MockPublisher)

	order := CreateMockOrder(TestOrderID, domain.StatusConfirmed, TestTotal)

	mockUploader.On("UploadInvoicePDF", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("cloudinary down"))
	// Email still goes out, just without the download link.
	mockMailer.On("SendMail", mock.Anything, mock.MatchedBy(func(m mailer.Mail) bool {
		return !strings.Contains(m.HTML, "Download PDF")
	})).Return("", errors.New("mail gateway down"))
	mockVoice.On("PlaceConfirmationCall", mock.Anything, mock.Anything).Return(errors.New("twilio down"))
	mockVoice.On("SendWhatsAppMessage", mock.Anything, mock.Anything).Return(errors.New("twilio down"))
	mockPublisher.On("Publish", mock.Anything, "order.confirmed", mock.Anything).Return(errors.New("broker down"))

	notifier := NewNotifier(mockMailer, mockVoice, mockUploader, mockPublisher, "+91")

	assert.NotPanics(t, func() {
		notifier.Dispatch(context.Background(), order)
	})

	mockMailer.AssertExpectations(t)
	mockVoice.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestNotifier_DispatchWithNoChannelsConfigured(t *testing.T) {
	order := CreateMockOrder(TestOrderID, domain.StatusConfirmed, TestTotal)

	notifier := NewNotifier(nil, nil, nil, nil, "")
	assert.NotPanics(t, func() {
		notifier.Dispatch(context.Background(), order)
	})
}
