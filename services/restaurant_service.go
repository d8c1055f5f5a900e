package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

// RestaurantUpdateIn is a partial-merge update: only non-nil fields change.
// OpeningHours, when supplied, replaces the whole map.
type RestaurantUpdateIn struct {
	Name         *string              `json:"name"`
	Description  *string              `json:"description"`
	Address      *string              `json:"address"`
	Phone        *string              `json:"phone"`
	OpeningHours *entity.OpeningHours `json:"openingHours"`
}

func (s *RestaurantService) Get() (*entity.Restaurant, error) {
	rest, err := s.Repo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("restaurant not found")
	}
	return rest, err
}

// Update merges the supplied fields into the singleton profile, creating it
// under the fixed key on first use.
func (s *RestaurantService) Update(in *RestaurantUpdateIn) (*entity.Restaurant, error) {
	if in.OpeningHours != nil {
		if err := validateOpeningHours(*in.OpeningHours); err != nil {
			return nil, err
		}
	}

	rest, err := s.Repo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rest = &entity.Restaurant{}
		applyRestaurantUpdate(rest, in)
		if err := s.Repo.Create(rest); err != nil {
			return nil, err
		}
		return rest, nil
	}
	if err != nil {
		return nil, err
	}

	applyRestaurantUpdate(rest, in)
	if err := s.Repo.Save(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func applyRestaurantUpdate(rest *entity.Restaurant, in *RestaurantUpdateIn) {
	if in.Name != nil {
		rest.Name = *in.Name
	}
	if in.Description != nil {
		rest.Description = *in.Description
	}
	if in.Address != nil {
		rest.Address = *in.Address
	}
	if in.Phone != nil {
		rest.Phone = *in.Phone
	}
	if in.OpeningHours != nil {
		rest.OpeningHours = datatypes.NewJSONType(*in.OpeningHours)
	}
}

var weekdayNames = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func validateOpeningHours(h entity.OpeningHours) error {
	for day, hours := range h {
		if !weekdayNames[day] {
			return apperr.InvalidInput("unknown weekday: " + day)
		}
		for _, hour := range hours {
			if hour < 0 || hour > 23 {
				return apperr.InvalidInput("hour slots must be within 0-23")
			}
		}
	}
	return nil
}
