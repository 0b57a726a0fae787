package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusShipped   OrderStatus = "Shipped"
	StatusCancelled OrderStatus = "Cancelled"
)

type LineItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// LineItems is stored as a single JSON column.
type LineItems []LineItem

func (li LineItems) Value() (driver.Value, error) {
	return json.Marshal(li)
}

func (li *LineItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, li)
	case string:
		return json.Unmarshal([]byte(v), li)
	case nil:
		*li = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into LineItems", src)
	}
}

type OrderInput struct {
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	Items         LineItems `json:"items"`
	TaxRate       float64   `json:"taxRate"`
}

type ComputedTotals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"taxAmount"`
	Total     float64 `json:"total"`
}

func (in OrderInput) ComputeTotals() ComputedTotals {
	var subtotal float64
	for _, item := range in.Items {
		subtotal += float64(item.Quantity) * item.Price
	}
	taxAmount := subtotal * (in.TaxRate / 100)
	return ComputedTotals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount,
	}
}

// OrderResult is the confirmation produced exactly once per order, either by
// the remote generation service or by the local fallback.
type OrderResult struct {
	ConfirmationID string `json:"confirmationId"`
	Message        string `json:"message"`
}

type Order struct {
	ID            string      `json:"id" gorm:"primaryKey;size:16"`
	CustomerName  string      `json:"customerName" gorm:"not null"`
	CustomerEmail string      `json:"customerEmail" gorm:"not null"`
	CustomerPhone string      `json:"customerPhone"`
	Items         LineItems   `json:"items" gorm:"type:json"`
	TaxRate       float64     `json:"taxRate"`
	Total         float64     `json:"total" gorm:"not null"`
	Status        OrderStatus `json:"status" gorm:"type:enum('Pending','Confirmed','Shipped','Cancelled');default:'Pending'"`
	CreatedAt     time.Time   `json:"createdAt" gorm:"autoCreateTime;index"`
}

// Input rebuilds the submitted OrderInput from a persisted order. Subtotal
// and tax amount are always recomputed from it, never stored.
func (o *Order) Input() OrderInput {
	return OrderInput{
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Items:         o.Items,
		TaxRate:       o.TaxRate,
	}
}

func (o *Order) Totals() ComputedTotals {
	return o.Input().ComputeTotals()
}
