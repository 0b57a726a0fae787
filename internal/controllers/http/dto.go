package http

import "smartbiz-confirm/internal/domain"

type LineItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"min=0"`
}

type CreateOrderRequest struct {
	CustomerName  string            `json:"customerName" binding:"required,min=2"`
	CustomerEmail string            `json:"customerEmail" binding:"required,email"`
	CustomerPhone string            `json:"customerPhone" binding:"required"`
	Items         []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxRate       float64           `json:"taxRate" binding:"min=0,max=100"`
}

func (r CreateOrderRequest) toDomain() domain.OrderInput {
	items := make(domain.LineItems, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return domain.OrderInput{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Items:         items,
		TaxRate:       r.TaxRate,
	}
}

type CreateOrderResponse struct {
	ConfirmationID string  `json:"confirmationId"`
	Message        string  `json:"message"`
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"taxAmount"`
	Total          float64 `json:"total"`
}

type CreateCheckoutRequest struct {
	SuccessURL string `json:"successUrl" binding:"required,url"`
	CancelURL  string `json:"cancelUrl" binding:"required,url"`
	Currency   string `json:"currency"`
}

type CreateCheckoutResponse struct {
	URL string `json:"url"`
}
