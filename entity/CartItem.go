package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one line of a user's pending selection. The item columns are a
// snapshot taken when the line was written, not a live reference.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Item ItemSnapshot `gorm:"embedded" json:"item"`

	Qty       int             `json:"qty"`
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"lineTotal"`
}
