package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"smartbiz-confirm/internal/domain"
	"smartbiz-confirm/internal/invoice"
	"smartbiz-confirm/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type Handler struct {
	service *services.OrderService
	rdb     *redis.Client
}

func NewHandler(s *services.OrderService, rdb *redis.Client) *Handler {
	return &Handler{service: s, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.GET("/orders/:id/invoice", h.GetInvoice)
	r.POST("/orders/:id/checkout", h.CreateCheckout)
	r.GET("/dashboard/stats", h.GetStats)
	r.POST("/stripe/webhook", h.StripeWebhook)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	order, result, err := h.service.SubmitOrder(ctx, req.toDomain())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totals := order.Totals()
	c.JSON(http.StatusCreated, CreateOrderResponse{
		ConfirmationID: result.ConfirmationID,
		Message:        result.Message,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		Total:          totals.Total,
	})
}

func (h *Handler) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		b, err := h.rdb.Get(ctx, services.OrdersCacheKey).Result()
		if err == nil {
			var orders []domain.Order
			if err := json.Unmarshal([]byte(b), &orders); err == nil {
				c.JSON(http.StatusOK, orders)
				return
			}
		}
	}

	orders, err := h.service.GetOrders(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(orders); err == nil {
			h.rdb.Set(context.Background(), services.OrdersCacheKey, data, 10*time.Second)
		}
	}

	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.service.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetInvoice(c *gin.Context) {
	order, err := h.service.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	html := invoice.BuildHTML(order.Input(), order.ID)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) CreateCheckout(c *gin.Context) {
	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.service.CreateCheckout(c.Request.Context(), c.Param("id"), req.SuccessURL, req.CancelURL, req.Currency)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CreateCheckoutResponse{URL: url})
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
		return
	}

	err = h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidWebhookSignature), errors.Is(err, services.ErrMissingOrderRef):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
