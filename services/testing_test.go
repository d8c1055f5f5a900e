package services

import (
	"testing"
	"time"

	"backend/configs"
	"backend/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// 2025-04-14 is a Monday; tests that care about weekdays pin the clock here.
var testMonday = time.Date(2025, time.April, 14, 10, 30, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A :memory: database exists per connection; keep the pool at one so
	// every session sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Name: "Test User", Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedItem(t *testing.T, db *gorm.DB, name, price, status string) *entity.Item {
	t.Helper()
	it := &entity.Item{
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Type:   entity.ItemTypeMain,
		Status: status,
	}
	require.NoError(t, db.Create(it).Error)
	return it
}

func seedRestaurant(t *testing.T, db *gorm.DB, hours entity.OpeningHours) {
	t.Helper()
	rest := &entity.Restaurant{
		Name:         "Cucumber Corner",
		OpeningHours: datatypes.NewJSONType(hours),
	}
	rest.ID = entity.RestaurantID
	require.NoError(t, db.Create(rest).Error)
}

func seedCartLine(t *testing.T, db *gorm.DB, userID uint, it *entity.Item, qty int) {
	t.Helper()
	snap := it.Snapshot()
	line := &entity.CartItem{
		UserID:    userID,
		Item:      snap,
		Qty:       qty,
		LineTotal: snap.Price.Mul(decimal.NewFromInt(int64(qty))),
	}
	require.NoError(t, db.Create(line).Error)
}
