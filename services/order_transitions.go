package services

import (
	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

// Cancel moves an in-progress order to cancelled. Cancelling frees the
// order's delivery slot for rebooking.
func (s *OrderService) Cancel(orderID uint) (*entity.Order, error) {
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	switch o.Status {
	case entity.OrderStatusCancelled:
		return nil, apperr.InvalidState("order is already cancelled")
	case entity.OrderStatusDelivered:
		return nil, apperr.InvalidState("order is already delivered")
	}

	if err := s.transition(orderID, entity.OrderStatusInProgress, entity.OrderStatusCancelled); err != nil {
		return nil, err
	}
	return s.reloadAndPublish(orderID)
}

// MarkDelivered moves an in-progress order to delivered. Marking an already
// delivered order again is an idempotent success.
func (s *OrderService) MarkDelivered(orderID uint) (*entity.Order, error) {
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	switch o.Status {
	case entity.OrderStatusDelivered:
		return o, nil
	case entity.OrderStatusCancelled:
		return nil, apperr.InvalidState("order is cancelled")
	}

	if err := s.transition(orderID, entity.OrderStatusInProgress, entity.OrderStatusDelivered); err != nil {
		return nil, err
	}
	return s.reloadAndPublish(orderID)
}

// SetStatus applies a generic status update. The target must be a known
// status and the move must be legal per the transition table: terminal
// states cannot be left, same-status updates are no-ops.
func (s *OrderService) SetStatus(orderID uint, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, apperr.InvalidInput("invalid status")
	}

	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if o.Status == status {
		return o, nil
	}
	if !entity.CanTransition(o.Status, status) {
		return nil, apperr.InvalidState("cannot leave " + o.Status)
	}

	if err := s.transition(orderID, o.Status, status); err != nil {
		return nil, err
	}
	return s.reloadAndPublish(orderID)
}

// transition performs a guarded from→to update; zero rows affected means the
// order raced into another state since it was read.
func (s *OrderService) transition(orderID uint, from, to string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order status changed concurrently")
		}
		return nil
	})
}

func (s *OrderService) reloadAndPublish(orderID uint) (*entity.Order, error) {
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	s.publish(o)
	return o, nil
}
