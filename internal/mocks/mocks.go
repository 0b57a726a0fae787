package mocks

import (
	"context"

	"smartbiz-confirm/internal/domain"
	"smartbiz-confirm/internal/infra/mailer"
	"smartbiz-confirm/internal/infra/payments"
	"smartbiz-confirm/internal/infra/twilio"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id string) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id string, status domain.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

type MockConfirmClient struct {
	mock.Mock
}

func (m *MockConfirmClient) GenerateConfirmation(ctx context.Context, in domain.OrderInput) (*domain.OrderResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderResult), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendMail(ctx context.Context, mail mailer.Mail) (string, error) {
	args := m.Called(ctx, mail)
	return args.String(0), args.Error(1)
}

type MockVoiceMessaging struct {
	mock.Mock
}

func (m *MockVoiceMessaging) PlaceConfirmationCall(ctx context.Context, p twilio.CallParams) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockVoiceMessaging) SendWhatsAppMessage(ctx context.Context, p twilio.WhatsAppParams) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadInvoicePDF(ctx context.Context, pdf []byte, publicID string) (string, error) {
	args := m.Called(ctx, pdf, publicID)
	return args.String(0), args.Error(1)
}

type MockCheckout struct {
	mock.Mock
}

func (m *MockCheckout) CreateCheckoutSession(ctx context.Context, p payments.CheckoutParams) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockCheckout) ParseWebhook(payload []byte, signature string) (*payments.WebhookEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.WebhookEvent), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Dispatch(ctx context.Context, order *domain.Order) {
	m.Called(ctx, order)
}
