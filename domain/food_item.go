package domain

import (
	"errors"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessGetDashboard      = "dashboard retrieved successfully"
	MessageSuccessExportFoodItems   = "food items exported successfully"
	MessageNoItemsAboutToExpire     = "No items about to expire. Nice job!"
	MessageNoItemsYet               = "No items yet. Add something above!"
	MessageNoItemsToManage          = "No items to manage yet."
	MessageFailedAddFoodItem        = "failed to add food item"
	MessageFailedDeleteFoodItem     = "failed to delete food item"
	MessageFailedGetFoodItems       = "failed to retrieve food items"
	MessageFailedGetDashboard       = "failed to retrieve dashboard"
	MessageFailedExportFoodItems    = "failed to export food items"
	MessageFailedFoodNameIsRequired = "Food name is required."
	MessagePageFailedLoadItems      = "Could not load your food items. Please try again."
	MessagePageFailedSaveItem       = "Could not save the food item. Please try again."
	MessagePageFailedDeleteItem     = "Could not delete the food item. Please try again."

	ErrFoodNameRequired  = errors.New("food name is required")
	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrExportDisabled    = errors.New("export storage is not configured")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
)

var (
	Categories = []string{"Dairy", "Meat", "Fruit", "Vegetable", "Grain", "Snack", "Other"}
	Locations  = []string{"Fridge", "Freezer", "Pantry"}
)

type (
	AddFoodItemRequest struct {
		Name       string `json:"name" form:"name" validate:"required"`
		Category   string `json:"category" form:"category" validate:"omitempty,oneof=Dairy Meat Fruit Vegetable Grain Snack Other"`
		Quantity   string `json:"quantity" form:"quantity"`
		Location   string `json:"location" form:"location" validate:"omitempty,oneof=Fridge Freezer Pantry"`
		ExpiryDate string `json:"expiry_date" form:"expiry_date" validate:"required,datetime=2006-01-02"`
	}

	DeleteFoodItemRequest struct {
		ID int64 `json:"id" form:"id" validate:"required,min=1"`
	}

	FoodItemResponse struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Category    string `json:"category"`
		Quantity    string `json:"quantity"`
		Location    string `json:"location"`
		ExpiryDate  string `json:"expiry_date"`
		AddedAt     string `json:"added_at"`
		DaysLeft    *int   `json:"days_left"`
		Status      string `json:"status"`
		StatusLabel string `json:"status_label"`
		Color       string `json:"color,omitempty"`
	}

	DashboardStatsResponse struct {
		TotalItems        int `json:"total_items"`
		ExpiredItems      int `json:"expired_items"`
		ExpiringSoonItems int `json:"expiring_soon_items"`
		NormalItems       int `json:"normal_items"`
		UnknownItems      int `json:"unknown_items"`
	}

	DashboardResponse struct {
		Today        string                 `json:"today"`
		Expired      []FoodItemResponse     `json:"expired"`
		ExpiringSoon []FoodItemResponse     `json:"expiring_soon"`
		All          []FoodItemResponse     `json:"all"`
		Stats        DashboardStatsResponse `json:"stats"`
	}

	ExportResponse struct {
		ObjectKey string `json:"object_key"`
		URL       string `json:"url"`
		Items     int    `json:"items"`
	}
)
