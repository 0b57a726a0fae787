package repository

import (
	"smartbiz-confirm/internal/domain"
)

type OrderRepository interface {
	Save(order *domain.Order) error
	FindByID(id string) (*domain.Order, error)
	FindAll() ([]domain.Order, error)
	UpdateStatus(id string, status domain.OrderStatus) error
}
