package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

// List returns catalog items, optionally restricted to published ones.
func (r *ItemRepository) List(publishedOnly bool) ([]entity.Item, error) {
	var items []entity.Item
	q := r.DB.Order("id")
	if publishedOnly {
		q = q.Where("status = ?", entity.ItemStatusPublished)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *ItemRepository) Find(id uint) (*entity.Item, error) {
	var it entity.Item
	if err := r.DB.First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ItemRepository) Create(it *entity.Item) error {
	return r.DB.Create(it).Error
}

// Update applies only the supplied columns.
func (r *ItemRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Item{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ItemRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Item{}, id)
	return res.RowsAffected, res.Error
}
