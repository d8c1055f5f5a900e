package configs

import (
	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{
		// Surface unique-index violations as gorm.ErrDuplicatedKey so the
		// order service can report slot conflicts instead of a raw DB error.
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	if err := Migrate(db); err != nil {
		panic(err)
	}
}

// Migrate creates the schema plus the slot-booking constraint. Kept separate
// from the global connection so tests can run it against their own DB.
func Migrate(g *gorm.DB) error {
	if err := g.AutoMigrate(
		&entity.User{},
		&entity.Item{},
		&entity.CartItem{},
		&entity.Restaurant{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		return err
	}

	// At most one in-progress order per (delivery_date, delivery_slot).
	// Enforced in storage so two concurrent placements can never both land.
	return g.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_active_slot
		ON orders(delivery_date, delivery_slot)
		WHERE status = 'in-progress' AND deleted_at IS NULL
	`).Error
}
