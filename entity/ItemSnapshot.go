package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ItemSnapshot is the copied-by-value record of an item at the moment it was
// added to a cart. It is embedded in CartItem and OrderItem rows; the live
// Item may be repriced or deleted without touching these columns.
type ItemSnapshot struct {
	ItemID      uint                        `json:"itemId"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Price       decimal.Decimal             `gorm:"type:decimal(10,2)" json:"price"`
	Image       string                      `json:"image"`
	Allergens   datatypes.JSONSlice[string] `json:"allergens"`
}
