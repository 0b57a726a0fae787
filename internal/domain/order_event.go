package domain

import "time"

type OrderConfirmedEvent struct {
	OrderID       string    `json:"orderId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"createdAt"`
}
