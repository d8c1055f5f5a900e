package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a cart line copied into a placed order. The embedded snapshot
// keeps the price and description the customer actually saw.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	Item ItemSnapshot `gorm:"embedded" json:"item"`

	Qty       int             `json:"qty"`
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"lineTotal"`
}
