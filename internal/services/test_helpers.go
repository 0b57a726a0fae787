package services

import (
	"time"

	"smartbiz-confirm/internal/domain"
)

func CreateMockInput() domain.OrderInput {
	return domain.OrderInput{
		CustomerName:  TestCustomerName,
		CustomerEmail: TestCustomerEmail,
		CustomerPhone: TestCustomerPhone,
		Items: domain.LineItems{
			{Name: "Widget", Quantity: 2, Price: 50},
			{Name: "Gadget", Quantity: 1, Price: 30},
		},
		TaxRate: 10,
	}
}

func CreateMockOrder(id string, status domain.OrderStatus, total float64) *domain.Order {
	in := CreateMockInput()
	return &domain.Order{
		ID:            id,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Items:         in.Items,
		TaxRate:       in.TaxRate,
		Total:         total,
		Status:        status,
		CreatedAt:     time.Now(),
	}
}

const (
	TestOrderID       = "ORD-AB12CD34"
	TestCustomerName  = "John Doe"
	TestCustomerEmail = "john@example.com"
	TestCustomerPhone = "9876543210"
	TestTotal         = float64(143)
)
