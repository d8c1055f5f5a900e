package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ItemStatusDraft     = "draft"
	ItemStatusPublished = "published"
)

const (
	ItemTypeStarter = "starter"
	ItemTypeMain    = "main"
	ItemTypeDessert = "dessert"
	ItemTypeSide    = "side"
	ItemTypeDrink   = "drink"
)

// ValidItemType reports whether t is one of the fixed menu categories.
func ValidItemType(t string) bool {
	switch t {
	case ItemTypeStarter, ItemTypeMain, ItemTypeDessert, ItemTypeSide, ItemTypeDrink:
		return true
	}
	return false
}

func ValidItemStatus(s string) bool {
	return s == ItemStatusDraft || s == ItemStatusPublished
}

type Item struct {
	gorm.Model
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Allergens   datatypes.JSONSlice[string] `json:"allergens"`
	Price       decimal.Decimal             `gorm:"type:decimal(10,2)" json:"price"`

	// Thumbnail as a base64 data URL, same shape the frontend uploads.
	Image string `json:"image"`

	Type   string `gorm:"not null;default:main" json:"type"`
	Status string `gorm:"not null;default:draft" json:"status"`
}

// Snapshot copies the orderable attributes into a value type. Cart lines and
// order lines carry these copies so later edits to the catalog never rewrite
// history.
func (i *Item) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		ItemID:      i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Image:       i.Image,
		Allergens:   append(datatypes.JSONSlice[string]{}, i.Allergens...),
	}
}
