package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Find(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Find(&orders).Error
	return orders, err
}

// ListAll returns every order, or only in-progress ones — the admin view.
func (r *OrderRepository) ListAll(all bool) ([]entity.Order, error) {
	q := r.DB.Preload("Items").Order("id DESC")
	if !all {
		q = q.Where("status = ?", entity.OrderStatusInProgress)
	}
	var orders []entity.Order
	err := q.Find(&orders).Error
	return orders, err
}

// BookedSlots returns the delivery slots held by in-progress orders on the
// given (midnight-truncated) date.
func (r *OrderRepository) BookedSlots(date time.Time) ([]int, error) {
	var slots []int
	err := r.DB.Model(&entity.Order{}).
		Where("delivery_date = ? AND status = ?", date, entity.OrderStatusInProgress).
		Pluck("delivery_slot", &slots).Error
	return slots, err
}

func (r *OrderRepository) SlotTaken(tx *gorm.DB, date time.Time, slot int) (bool, error) {
	var count int64
	err := tx.Model(&entity.Order{}).
		Where("delivery_date = ? AND delivery_slot = ? AND status = ?",
			date, slot, entity.OrderStatusInProgress).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatusGuard moves an order from one status to another only if it is
// still in the expected source status. RowsAffected == 0 means the order was
// missing or had moved on.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
