package entity

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RestaurantID is the fixed primary key of the single profile row. All reads
// and writes target this key, so a second profile can never appear.
const RestaurantID uint = 1

// OpeningHours maps a lowercase weekday name ("monday" .. "sunday") to the
// delivery hour-slots (24h integers) accepted on that day.
type OpeningHours map[string][]int

// ForDate returns the open slots for the weekday of t. A missing or empty
// entry means closed that day.
func (h OpeningHours) ForDate(t time.Time) []int {
	return h[strings.ToLower(t.UTC().Weekday().String())]
}

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`

	OpeningHours datatypes.JSONType[OpeningHours] `json:"openingHours"`
}
