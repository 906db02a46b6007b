package seed

import (
	"Food-Waste-Tracker/domain"
	"Food-Waste-Tracker/entities"
	"Food-Waste-Tracker/pkg/food"
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type sample struct {
	name     string
	category string
	quantity string
	location string
	inDays   int
}

var samples = []sample{
	{name: "Milk", category: "Dairy", quantity: "1L", location: "Fridge", inDays: 7},
	{name: "Chicken breast", category: "Meat", quantity: "500g", location: "Fridge", inDays: 1},
	{name: "Bananas", category: "Fruit", quantity: "6 pcs", location: "Pantry", inDays: -1},
	{name: "Frozen peas", category: "Vegetable", quantity: "1 bag", location: "Freezer", inDays: 120},
}

// Seed inserts sample items relative to now. It does nothing when the table
// already has rows and returns the number of items inserted.
func Seed(ctx context.Context, db *gorm.DB, now time.Time) (int, error) {
	repo := food.NewFoodRepository(db)

	count, err := repo.CountFoodItems(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Infof("food_items already has %d rows, skipping seed", count)
		return 0, nil
	}

	for _, s := range samples {
		item := &entities.FoodItem{
			Name:       s.name,
			Category:   s.category,
			Quantity:   s.quantity,
			Location:   s.location,
			ExpiryDate: now.AddDate(0, 0, s.inDays).Format(domain.DateLayout),
			AddedAt:    now.Format(domain.TimestampLayout),
		}
		if err := repo.AddFoodItem(ctx, item); err != nil {
			return 0, fmt.Errorf("seed %s: %w", s.name, err)
		}
	}

	log.Infof("seeded %d food items", len(samples))
	return len(samples), nil
}
