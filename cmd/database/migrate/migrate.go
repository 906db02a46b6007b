package migration

import (
	"Food-Waste-Tracker/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// FoodItemsSchema is the on-disk layout shared with existing fridge.db files.
const FoodItemsSchema = `
CREATE TABLE IF NOT EXISTS food_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    category TEXT,
    quantity TEXT,
    location TEXT,
    expiry_date TEXT NOT NULL,
    added_at TEXT
);`

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		if err := db.Exec(FoodItemsSchema).Error; err != nil {
			return fmt.Errorf("create food_items table: %w", err)
		}
	} else if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		return fmt.Errorf("migrate food item table: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
