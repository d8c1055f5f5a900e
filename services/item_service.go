package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ItemService struct {
	Repo *repository.ItemRepository
}

func NewItemService(repo *repository.ItemRepository) *ItemService {
	return &ItemService{Repo: repo}
}

type ItemIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Allergens   []string        `json:"allergens"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
}

type ItemUpdateIn struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Allergens   *[]string        `json:"allergens"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Type        *string          `json:"type"`
	Status      *string          `json:"status"`
}

func (s *ItemService) List(publishedOnly bool) ([]entity.Item, error) {
	return s.Repo.List(publishedOnly)
}

func (s *ItemService) Get(id uint) (*entity.Item, error) {
	it, err := s.Repo.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("item not found")
	}
	return it, err
}

func (s *ItemService) Create(in *ItemIn) (*entity.Item, error) {
	if in.Type == "" {
		in.Type = entity.ItemTypeMain
	}
	if in.Status == "" {
		in.Status = entity.ItemStatusDraft
	}
	if !entity.ValidItemType(in.Type) {
		return nil, apperr.InvalidInput("unknown item type")
	}
	if !entity.ValidItemStatus(in.Status) {
		return nil, apperr.InvalidInput("unknown item status")
	}
	if in.Price.IsNegative() {
		return nil, apperr.InvalidInput("price must not be negative")
	}

	it := &entity.Item{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Allergens:   datatypes.JSONSlice[string](in.Allergens),
		Price:       in.Price,
		Image:       in.Image,
		Type:        in.Type,
		Status:      in.Status,
	}
	if err := s.Repo.Create(it); err != nil {
		return nil, err
	}
	return it, nil
}

// Update changes only the fields present in the request.
func (s *ItemService) Update(id uint, in *ItemUpdateIn) (*entity.Item, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Allergens != nil {
		updates["allergens"] = datatypes.JSONSlice[string](*in.Allergens)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, apperr.InvalidInput("price must not be negative")
		}
		updates["price"] = *in.Price
	}
	if in.Image != nil {
		updates["image"] = *in.Image
	}
	if in.Type != nil {
		if !entity.ValidItemType(*in.Type) {
			return nil, apperr.InvalidInput("unknown item type")
		}
		updates["type"] = *in.Type
	}
	if in.Status != nil {
		if !entity.ValidItemStatus(*in.Status) {
			return nil, apperr.InvalidInput("unknown item status")
		}
		updates["status"] = *in.Status
	}

	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *ItemService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("item not found")
	}
	return nil
}
