package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	ItemRepo *repository.ItemRepository
	UserRepo *repository.UserRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, ir *repository.ItemRepository, ur *repository.UserRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ItemRepo: ir, UserRepo: ur}
}

type CartLineIn struct {
	ItemID uint `json:"itemId" binding:"required"`
	Qty    int  `json:"qty" binding:"required"`
}

// Get returns the user's cart lines and their decimal subtotal.
func (s *CartService) Get(userID uint) ([]entity.CartItem, decimal.Decimal, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, decimal.Zero, apperr.NotFound("user not found")
		}
		return nil, decimal.Zero, err
	}

	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal)
	}
	return lines, subtotal, nil
}

// Replace swaps the cart wholesale for the given lines. Each line snapshots
// the referenced item at this moment; only published items are accepted.
func (s *CartService) Replace(userID uint, in []CartLineIn) ([]entity.CartItem, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	lines := make([]entity.CartItem, 0, len(in))
	for _, l := range in {
		if l.Qty < 1 {
			return nil, apperr.InvalidInput("quantity must be at least 1")
		}
		it, err := s.ItemRepo.Find(l.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("item not found")
			}
			return nil, err
		}
		if it.Status != entity.ItemStatusPublished {
			return nil, apperr.InvalidInput("item is not published")
		}
		snap := it.Snapshot()
		lines = append(lines, entity.CartItem{
			Item:      snap,
			Qty:       l.Qty,
			LineTotal: snap.Price.Mul(decimal.NewFromInt(int64(l.Qty))),
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Replace(tx, userID, lines)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.ListForUser(userID)
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}
