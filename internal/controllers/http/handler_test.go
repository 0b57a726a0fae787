package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartbiz-confirm/internal/domain"
	"smartbiz-confirm/internal/infra"
	"smartbiz-confirm/internal/infra/payments"
	"smartbiz-confirm/internal/mocks"
	"smartbiz-confirm/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(repo *mocks.MockOrderRepository, confirm *mocks.MockConfirmClient, checkout *mocks.MockCheckout) *gin.Engine {
	gin.SetMode(gin.TestMode)

	// Avoid handing typed-nil mocks to the service's interface fields.
	var confirmIface infra.ConfirmClientInterface
	if confirm != nil {
		confirmIface = confirm
	}
	var checkoutIface payments.CheckoutInterface
	if checkout != nil {
		checkoutIface = checkout
	}

	service := services.NewOrderService(repo, confirmIface, nil, checkoutIface)
	handler := NewHandler(service, nil)

	r := gin.New()
	handler.RegisterRoutes(r)
	return r
}

func validOrderBody() []byte {
	body, _ := json.Marshal(map[string]any{
		"customerName":  "John Doe",
		"customerEmail": "john@example.com",
		"customerPhone": "+919876543210",
		"items": []map[string]any{
			{"name": "Widget", "quantity": 2, "price": 50},
			{"name": "Gadget", "quantity": 1, "price": 30},
		},
		"taxRate": 10,
	})
	return body
}

func TestCreateOrder(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	mockConfirm := new(mocks.MockConfirmClient)

	mockConfirm.On("GenerateConfirmation", mock.Anything, mock.Anything).Return(nil, errors.New("service unavailable"))
	mockRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil)

	r := newTestRouter(mockRepo, mockConfirm, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(validOrderBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CreateOrderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Regexp(t, `^ORD-[A-Z0-9]{8}$`, resp.ConfirmationID)
	assert.Equal(t, 130.0, resp.Subtotal)
	assert.Equal(t, 13.0, resp.TaxAmount)
	assert.Equal(t, 143.0, resp.Total)

	mockRepo.AssertExpectations(t)
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "missing items",
			body: map[string]any{
				"customerName":  "John Doe",
				"customerEmail": "john@example.com",
				"customerPhone": "+919876543210",
				"items":         []map[string]any{},
				"taxRate":       10,
			},
		},
		{
			name: "bad email",
			body: map[string]any{
				"customerName":  "John Doe",
				"customerEmail": "not-an-email",
				"customerPhone": "+919876543210",
				"items":         []map[string]any{{"name": "Widget", "quantity": 1, "price": 50}},
				"taxRate":       10,
			},
		},
		{
			name: "tax rate over 100",
			body: map[string]any{
				"customerName":  "John Doe",
				"customerEmail": "john@example.com",
				"customerPhone": "+919876543210",
				"items":         []map[string]any{{"name": "Widget", "quantity": 1, "price": 50}},
				"taxRate":       101,
			},
		},
		{
			name: "zero quantity item",
			body: map[string]any{
				"customerName":  "John Doe",
				"customerEmail": "john@example.com",
				"customerPhone": "+919876543210",
				"items":         []map[string]any{{"name": "Widget", "quantity": 0, "price": 50}},
				"taxRate":       10,
			},
		},
		{
			name: "single character name",
			body: map[string]any{
				"customerName":  "J",
				"customerEmail": "john@example.com",
				"customerPhone": "+919876543210",
				"items":         []map[string]any{{"name": "Widget", "quantity": 1, "price": 50}},
				"taxRate":       10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockOrderRepository)
			r := newTestRouter(mockRepo, nil, nil)

			body, _ := json.Marshal(tt.body)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			// Rejected orders are never persisted.
			mockRepo.AssertNotCalled(t, "Save", mock.Anything)
		})
	}
}

func TestCreateOrderPersistenceFailure(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	mockConfirm := new(mocks.MockConfirmClient)

	mockConfirm.On("GenerateConfirmation", mock.Anything, mock.Anything).Return(nil, errors.New("down"))
	mockRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(errors.New("database error"))

	r := newTestRouter(mockRepo, mockConfirm, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(validOrderBody()))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetOrder(t *testing.T) {
	order := &domain.Order{
		ID:            "ORD-AB12CD34",
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		Items:         domain.LineItems{{Name: "Widget", Quantity: 2, Price: 50}},
		TaxRate:       10,
		Total:         110,
		Status:        domain.StatusConfirmed,
		CreatedAt:     time.Now(),
	}

	mockRepo := new(mocks.MockOrderRepository)
	mockRepo.On("FindByID", "ORD-AB12CD34").Return(order, nil)
	mockRepo.On("FindByID", "ORD-MISSING1").Return(nil, nil)

	r := newTestRouter(mockRepo, nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/ORD-AB12CD34", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var got domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "ORD-AB12CD34", got.ID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/ORD-MISSING1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrders(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	mockRepo.On("FindAll").Return([]domain.Order{
		{ID: "ORD-AB12CD34", Total: 143, Status: domain.StatusConfirmed},
	}, nil)

	r := newTestRouter(mockRepo, nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var orders []domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)
}

func TestGetInvoice(t *testing.T) {
	order := &domain.Order{
		ID:            "ORD-AB12CD34",
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		Items:         domain.LineItems{{Name: "Widget", Quantity: 2, Price: 50}},
		TaxRate:       10,
		Total:         110,
		Status:        domain.StatusConfirmed,
	}

	mockRepo := new(mocks.MockOrderRepository)
	mockRepo.On("FindByID", "ORD-AB12CD34").Return(order, nil)

	r := newTestRouter(mockRepo, nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/ORD-AB12CD34/invoice", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "ORD-AB12CD34")
	assert.Contains(t, w.Body.String(), "John Doe")
}

func TestGetStats(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	mockRepo.On("FindAll").Return([]domain.Order{
		{ID: "ORD-AB12CD34", Total: 143, Status: domain.StatusConfirmed, CreatedAt: time.Now()},
	}, nil)

	r := newTestRouter(mockRepo, nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var stats services.DashboardStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.OrderCount)
	assert.Equal(t, 143.0, stats.TotalSales)
}

func TestCreateCheckoutEndpoint(t *testing.T) {
	order := &domain.Order{
		ID:            "ORD-AB12CD34",
		CustomerEmail: "john@example.com",
		Items:         domain.LineItems{{Name: "Widget", Quantity: 2, Price: 50}},
		Status:        domain.StatusConfirmed,
	}

	mockRepo := new(mocks.MockOrderRepository)
	mockCheckout := new(mocks.MockCheckout)
	mockRepo.On("FindByID", "ORD-AB12CD34").Return(order, nil)
	mockCheckout.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return("https://checkout.stripe.com/pay/cs_test_123", nil)

	r := newTestRouter(mockRepo, nil, mockCheckout)

	body, _ := json.Marshal(CreateCheckoutRequest{
		SuccessURL: "https://example.com/success",
		CancelURL:  "https://example.com/cancel",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/ORD-AB12CD34/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CreateCheckoutResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", resp.URL)

	// Missing URLs fail binding.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/orders/ORD-AB12CD34/checkout", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStripeWebhookEndpoint(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	mockCheckout := new(mocks.MockCheckout)

	mockCheckout.On("ParseWebhook", mock.Anything, "bad").Return(nil, errors.New("signature mismatch"))
	mockCheckout.On("ParseWebhook", mock.Anything, "good").Return(&payments.WebhookEvent{Type: "invoice.paid"}, nil)

	r := newTestRouter(mockRepo, nil, mockCheckout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/stripe/webhook", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Stripe-Signature", "bad")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/stripe/webhook", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Stripe-Signature", "good")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "received")
}
