package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"smartbiz-confirm/internal/domain"
	"smartbiz-confirm/internal/infra"
	"smartbiz-confirm/internal/infra/payments"
	"smartbiz-confirm/internal/repository"

	"github.com/go-redis/redis/v8"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrMissingOrderRef         = errors.New("no order ID in session metadata")
)

const (
	OrdersCacheKey = "orders:all"
	StatsCacheKey  = "dashboard:stats"
)

type NotifierInterface interface {
	Dispatch(ctx context.Context, order *domain.Order)
}

type OrderService struct {
	repo        repository.OrderRepository
	confirm     infra.ConfirmClientInterface
	notifier    NotifierInterface
	checkout    payments.CheckoutInterface
	redisClient *redis.Client
}

func NewOrderService(r repository.OrderRepository, c infra.ConfirmClientInterface, n NotifierInterface, p payments.CheckoutInterface) *OrderService {
	return &OrderService{
		repo:     r,
		confirm:  c,
		notifier: n,
		checkout: p,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// SubmitOrder runs the order core: one remote confirmation attempt with a
// local fallback, total computation, persistence, then a detached
// best-effort notification fan-out. Only a persistence failure surfaces to
// the caller; the input is validated before it gets here.
func (s *OrderService) SubmitOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, *domain.OrderResult, error) {
	result := s.generateConfirmation(ctx, in)
	totals := in.ComputeTotals()

	order := &domain.Order{
		ID:            result.ConfirmationID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Items:         in.Items,
		TaxRate:       in.TaxRate,
		Total:         totals.Total,
		Status:        domain.StatusConfirmed,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Save(order); err != nil {
		return nil, nil, err
	}

	s.invalidateCaches(ctx)

	// Outcomes of the fan-out are observable only via logs; the caller
	// does not wait for it.
	if s.notifier != nil {
		go s.notifier.Dispatch(context.Background(), order)
	}

	return order, result, nil
}

func (s *OrderService) generateConfirmation(ctx context.Context, in domain.OrderInput) *domain.OrderResult {
	if s.confirm != nil {
		result, err := s.confirm.GenerateConfirmation(ctx, in)
		if err == nil && result != nil && result.ConfirmationID != "" && result.Message != "" {
			return result
		}
		if err != nil {
			log.Printf("Confirmation service failed, falling back to local generation: %v", err)
		} else {
			log.Printf("Confirmation service returned a malformed result, falling back to local generation")
		}
	}
	return fallbackConfirmation(in.CustomerName)
}

func (s *OrderService) invalidateCaches(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, OrdersCacheKey, StatsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate caches: %v", err)
	}
}

func (s *OrderService) GetOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll()
}

func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) CreateCheckout(ctx context.Context, orderID, successURL, cancelURL, currency string) (string, error) {
	if s.checkout == nil {
		return "", errors.New("payments are not configured")
	}

	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	return s.checkout.CreateCheckoutSession(ctx, payments.CheckoutParams{
		OrderID:       order.ID,
		CustomerEmail: order.CustomerEmail,
		Items:         order.Items,
		Currency:      currency,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
	})
}

// HandleWebhook verifies an inbound payment event and, on checkout
// completion, re-runs the notification fan-out for the correlated order.
// The fan-out runs inline here; its per-channel failures are still absorbed.
func (s *OrderService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.checkout == nil {
		return errors.New("payments are not configured")
	}

	event, err := s.checkout.ParseWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWebhookSignature, err)
	}

	if event.Type != payments.EventCheckoutCompleted {
		return nil
	}
	if event.SessionOrderID == "" {
		return ErrMissingOrderRef
	}

	order, err := s.GetOrderByID(ctx, event.SessionOrderID)
	if err != nil {
		return err
	}

	log.Printf("Payment completed for order %s, re-dispatching notifications", order.ID)
	if s.notifier != nil {
		s.notifier.Dispatch(ctx, order)
	}
	return nil
}
