package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/logger"
	"backend/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeliveryFee is the flat fee added to every order at placement time. It is
// persisted on the order row, never recomputed at read time.
var DeliveryFee = decimal.NewFromInt(5)

// OrderEvent is pushed to subscribers (the admin dashboard feed) whenever an
// order is created or changes status.
type OrderEvent struct {
	OrderID      uint      `json:"orderId"`
	Code         string    `json:"code"`
	UserID       uint      `json:"userId"`
	Status       string    `json:"status"`
	DeliveryDate time.Time `json:"deliveryDate"`
	DeliverySlot int       `json:"deliverySlot"`
	Total        string    `json:"total"`
}

// OrderPublisher receives order events. Implemented by the websocket hub.
type OrderPublisher interface {
	Publish(evt OrderEvent)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	RestRepo *repository.RestaurantRepository

	Events OrderPublisher

	// Now supplies the wall clock; swapped out in tests to pin the weekday.
	Now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
	restRepo *repository.RestaurantRepository,
) *OrderService {
	return &OrderService{
		DB:       db,
		Repo:     repo,
		CartRepo: cartRepo,
		UserRepo: userRepo,
		RestRepo: restRepo,
		Now:      time.Now,
	}
}

// DateOnly truncates t to its UTC calendar day. Delivery dates are always
// stored this way so (date, slot) comparisons are exact.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AvailableSlots returns the hour slots on the given date that are within the
// restaurant's opening hours and not already booked by an in-progress order.
// A missing profile is NotFound; a closed or fully booked day is an empty
// slice with no error.
func (s *OrderService) AvailableSlots(date time.Time) ([]int, error) {
	rest, err := s.RestRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}

	open := rest.OpeningHours.Data().ForDate(date)
	if len(open) == 0 {
		return []int{}, nil
	}

	booked, err := s.Repo.BookedSlots(DateOnly(date))
	if err != nil {
		return nil, err
	}
	taken := make(map[int]bool, len(booked))
	for _, b := range booked {
		taken[b] = true
	}

	available := make([]int, 0, len(open))
	for _, h := range open {
		if !taken[h] {
			available = append(available, h)
		}
	}
	return available, nil
}

// PlaceFromCart converts the user's cart into a new in-progress order for
// today at the requested slot, then empties the cart. The slot check and the
// insert run inside one transaction, and a partial unique index on
// (delivery_date, delivery_slot) backs it up, so two concurrent placements
// for the same slot resolve to one success and one Conflict.
func (s *OrderService) PlaceFromCart(userID uint, slot int) (*entity.Order, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperr.InvalidState("cart is empty")
	}

	rest, err := s.RestRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}

	now := s.Now()
	open := rest.OpeningHours.Data().ForDate(now)
	if !containsHour(open, slot) {
		return nil, apperr.InvalidInput("restaurant is not open at the chosen time slot")
	}

	deliveryDate := DateOnly(now)

	subtotal := decimal.Zero
	items := make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal)
		items = append(items, entity.OrderItem{
			Item:      l.Item,
			Qty:       l.Qty,
			LineTotal: l.LineTotal,
		})
	}
	discount := decimal.Zero

	order := &entity.Order{
		Code:         uuid.NewString(),
		UserID:       userID,
		Status:       entity.OrderStatusInProgress,
		DeliveryDate: deliveryDate,
		DeliverySlot: slot,
		Subtotal:     subtotal,
		Discount:     discount,
		DeliveryFee:  DeliveryFee,
		Total:        subtotal.Sub(discount).Add(DeliveryFee),
		Items:        items,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := s.Repo.SlotTaken(tx, deliveryDate, slot)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("delivery slot is already booked")
		}
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		// The unique slot index catches placements that raced past the
		// in-transaction check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("delivery slot is already booked")
		}
		return nil, err
	}

	logger.L().Info("order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", userID),
		zap.Int("slot", slot),
		zap.String("total", order.Total.String()))
	s.publish(order)

	return order, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID, limit)
}

func (s *OrderService) ListAll(all bool) ([]entity.Order, error) {
	return s.Repo.ListAll(all)
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Find(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	return o, err
}

func (s *OrderService) GetForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.FindForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	return o, err
}

func (s *OrderService) publish(o *entity.Order) {
	if s.Events == nil {
		return
	}
	s.Events.Publish(OrderEvent{
		OrderID:      o.ID,
		Code:         o.Code,
		UserID:       o.UserID,
		Status:       o.Status,
		DeliveryDate: o.DeliveryDate,
		DeliverySlot: o.DeliverySlot,
		Total:        o.Total.String(),
	})
}

func containsHour(hours []int, h int) bool {
	for _, v := range hours {
		if v == h {
			return true
		}
	}
	return false
}
