package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

// Replace swaps the user's cart wholesale: every existing line is dropped and
// the supplied lines written in their place.
func (r *CartRepository) Replace(tx *gorm.DB, userID uint, lines []entity.CartItem) error {
	if err := tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].UserID = userID
	}
	return tx.Create(&lines).Error
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
