package handlers

import (
	"Food-Waste-Tracker/domain"
	"Food-Waste-Tracker/internal/api/presenters"
	"Food-Waste-Tracker/internal/utils"
	"Food-Waste-Tracker/pkg/export"
	"Food-Waste-Tracker/pkg/food"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
		ExportFoodItems(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService   food.FoodService
		exportService export.ExportService
		validator     *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, exportService export.ExportService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService:   foodService,
		exportService: exportService,
		validator:     validator,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, errors.New(utils.ValidationMessage(err)))
	}

	res, err := h.foodService.AddFoodItem(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNameRequired) || errors.Is(err, domain.ErrInvalidExpiryDate) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
		}
		log.Errorf("add food item: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil || itemID <= 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, domain.ErrInvalidFoodItemID)
	}

	if err := h.foodService.DeleteFoodItem(c.Context(), int64(itemID)); err != nil {
		log.Errorf("delete food item %d: %v", itemID, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"id": itemID}, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	items, err := h.foodService.GetFoodItems(c.Context(), h.foodService.Today())
	if err != nil {
		log.Errorf("get food items: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"total": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := h.foodService.GetDashboard(c.Context(), h.foodService.Today())
	if err != nil {
		log.Errorf("get dashboard: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, dashboard, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *foodHandler) ExportFoodItems(c *fiber.Ctx) error {
	res, err := h.exportService.ExportSnapshot(c.Context(), h.foodService.Today())
	if err != nil {
		if errors.Is(err, domain.ErrExportDisabled) {
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedExportFoodItems, err)
		}
		log.Errorf("export food items: %v", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedExportFoodItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessExportFoodItems)
}
