package mysql

import (
	"errors"
	"log"

	"smartbiz-confirm/internal/domain"
	"smartbiz-confirm/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(order *domain.Order) error {
	if order.ID == "" {
		return errors.New("order is missing a confirmation ID")
	}

	result := r.db.Create(order)
	if result.Error != nil {
		log.Printf("Database save error for order %s: %v", order.ID, result.Error)
		return result.Error
	}

	log.Printf("Order %s saved successfully", order.ID)
	return nil
}

func (r *orderRepo) FindByID(id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

// UpdateStatus is used by external fulfillment processes; nothing in the
// submission flow mutates status after creation.
func (r *orderRepo) UpdateStatus(id string, status domain.OrderStatus) error {
	result := r.db.Model(&domain.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		log.Printf("UpdateStatus error for order %s: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
