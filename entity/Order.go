package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Code string `gorm:"uniqueIndex" json:"code"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Status string `gorm:"not null;default:in-progress;index" json:"status"`

	// DeliveryDate is the UTC calendar day, time truncated to midnight.
	// Together with DeliverySlot it identifies a booking; at most one
	// in-progress order may hold a (date, slot) pair (partial unique index,
	// see configs.Migrate).
	DeliveryDate time.Time `json:"deliveryDate"`
	DeliverySlot int       `json:"deliverySlot"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Discount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
