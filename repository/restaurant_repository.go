package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// Get reads the singleton profile row.
func (r *RestaurantRepository) Get() (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, entity.RestaurantID).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// Create writes the profile under the fixed key.
func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	rest.ID = entity.RestaurantID
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}
