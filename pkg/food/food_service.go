package food

import (
	"Food-Waste-Tracker/domain"
	"Food-Waste-Tracker/entities"
	"Food-Waste-Tracker/pkg/expiry"
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type (
	FoodService interface {
		Today() time.Time
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id int64) error
		GetFoodItem(ctx context.Context, id int64, today time.Time) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, today time.Time) ([]domain.FoodItemResponse, error)
		GetDisplayEntries(ctx context.Context, today time.Time) ([]expiry.Entry, error)
		GetDashboard(ctx context.Context, today time.Time) (domain.DashboardResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		now            func() time.Time
	}
)

func NewFoodService(foodRepository FoodRepository, now func() time.Time) FoodService {
	if now == nil {
		now = time.Now
	}
	return &foodService{
		foodRepository: foodRepository,
		now:            now,
	}
}

func (s *foodService) Today() time.Time {
	return s.now()
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.FoodItemResponse{}, domain.ErrFoodNameRequired
	}

	if _, err := time.Parse(domain.DateLayout, req.ExpiryDate); err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	now := s.now()
	foodItem := &entities.FoodItem{
		Name:       name,
		Category:   req.Category,
		Quantity:   strings.TrimSpace(req.Quantity),
		Location:   req.Location,
		ExpiryDate: req.ExpiryDate,
		AddedAt:    now.Format(domain.TimestampLayout),
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	daysLeft := expiry.ComputeDaysLeft(foodItem.ExpiryDate, now)
	return toFoodItemResponse(expiry.Entry{
		Item:           *foodItem,
		DaysLeft:       daysLeft,
		Classification: expiry.Classify(daysLeft),
	}), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidFoodItemID
	}
	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItem(ctx context.Context, id int64, today time.Time) (domain.FoodItemResponse, error) {
	if id <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidFoodItemID
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	daysLeft := expiry.ComputeDaysLeft(foodItem.ExpiryDate, today)
	return toFoodItemResponse(expiry.Entry{
		Item:           *foodItem,
		DaysLeft:       daysLeft,
		Classification: expiry.Classify(daysLeft),
	}), nil
}

func (s *foodService) GetDisplayEntries(ctx context.Context, today time.Time) ([]expiry.Entry, error) {
	foodItems, err := s.foodRepository.GetAllFoodItems(ctx)
	if err != nil {
		return nil, err
	}
	return expiry.OrderForDisplay(foodItems, today), nil
}

func (s *foodService) GetFoodItems(ctx context.Context, today time.Time) ([]domain.FoodItemResponse, error) {
	entries, err := s.GetDisplayEntries(ctx, today)
	if err != nil {
		return nil, err
	}
	return toFoodItemResponses(entries), nil
}

func (s *foodService) GetDashboard(ctx context.Context, today time.Time) (domain.DashboardResponse, error) {
	entries, err := s.GetDisplayEntries(ctx, today)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	var unreadable []int64
	for _, entry := range entries {
		if entry.Classification == expiry.Unknown {
			unreadable = append(unreadable, entry.Item.ID)
		}
	}
	if len(unreadable) > 0 {
		log.Warnf("%d food items have unreadable expiry dates: ids %v", len(unreadable), unreadable)
	}

	views := expiry.Partition(entries)
	stats := expiry.Summarize(entries)

	return domain.DashboardResponse{
		Today:        today.Format(domain.DateLayout),
		Expired:      toFoodItemResponses(views.Expired),
		ExpiringSoon: toFoodItemResponses(views.ExpiringSoon),
		All:          toFoodItemResponses(views.All),
		Stats: domain.DashboardStatsResponse{
			TotalItems:        stats.Total,
			ExpiredItems:      stats.Expired,
			ExpiringSoonItems: stats.ExpiringSoon,
			NormalItems:       stats.Normal,
			UnknownItems:      stats.Unknown,
		},
	}, nil
}

func toFoodItemResponses(entries []expiry.Entry) []domain.FoodItemResponse {
	response := make([]domain.FoodItemResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toFoodItemResponse(entry))
	}
	return response
}

func toFoodItemResponse(entry expiry.Entry) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:          entry.Item.ID,
		Name:        entry.Item.Name,
		Category:    entry.Item.Category,
		Quantity:    entry.Item.Quantity,
		Location:    entry.Item.Location,
		ExpiryDate:  entry.Item.ExpiryDate,
		AddedAt:     entry.Item.AddedAt,
		DaysLeft:    entry.DaysLeft.Ptr(),
		Status:      string(entry.Classification),
		StatusLabel: entry.Classification.Label(),
		Color:       entry.Classification.Color(),
	}
}
