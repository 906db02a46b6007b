package food

import (
	"Food-Waste-Tracker/domain"
	"Food-Waste-Tracker/entities"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id int64) (*entities.FoodItem, error)
		GetAllFoodItems(ctx context.Context) ([]entities.FoodItem, error)
		CountFoodItems(ctx context.Context) (int64, error)
		DeleteFoodItem(ctx context.Context, id int64) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	if err := r.db.WithContext(ctx).Create(foodItem).Error; err != nil {
		return fmt.Errorf("insert food item: %w", err)
	}
	return nil
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id int64) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, fmt.Errorf("get food item %d: %w", id, err)
	}
	return &foodItem, nil
}

// GetAllFoodItems orders by expiry date, then by insertion order for equal dates.
func (r *foodRepository) GetAllFoodItems(ctx context.Context) ([]entities.FoodItem, error) {
	foodItems := []entities.FoodItem{}
	if err := r.db.WithContext(ctx).Order("expiry_date asc").Order("id asc").Find(&foodItems).Error; err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	return foodItems, nil
}

func (r *foodRepository) CountFoodItems(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count food items: %w", err)
	}
	return count, nil
}

// DeleteFoodItem is a no-op for ids that do not exist.
func (r *foodRepository) DeleteFoodItem(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error; err != nil {
		return fmt.Errorf("delete food item %d: %w", id, err)
	}
	return nil
}
