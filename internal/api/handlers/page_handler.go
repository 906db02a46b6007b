package handlers

import (
	"Food-Waste-Tracker/domain"
	"Food-Waste-Tracker/internal/utils"
	"Food-Waste-Tracker/pkg/food"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"daysLeft": func(days *int) string {
		if days == nil {
			return ""
		}
		return strconv.Itoa(*days)
	},
}).ParseFS(templateFS, "templates/index.html"))

type (
	PageHandler interface {
		Index(c *fiber.Ctx) error
		AddFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
	}

	pageHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}

	tableView struct {
		Rows   []domain.FoodItemResponse
		ShowID bool
	}

	pageData struct {
		Today                  string
		Categories             []string
		Locations              []string
		Form                   domain.AddFoodItemRequest
		Error                  string
		Success                string
		Expired                tableView
		ExpiringSoon           tableView
		All                    tableView
		EmptyMessage           string
		NothingExpiringMessage string
		NothingToManageMessage string
		Unavailable            bool
	}
)

func NewPageHandler(foodService food.FoodService, validator *validator.Validate) PageHandler {
	return &pageHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *pageHandler) Index(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, domain.AddFoodItemRequest{}, "", successMessage(c))
}

func (h *pageHandler) AddFoodItem(c *fiber.Ctx) error {
	req := domain.AddFoodItemRequest{}
	if err := c.BodyParser(&req); err != nil {
		return h.render(c, fiber.StatusBadRequest, req, domain.MessageFailedBodyRequest, "")
	}

	if strings.TrimSpace(req.Name) == "" {
		return h.render(c, fiber.StatusBadRequest, req, domain.MessageFailedFoodNameIsRequired, "")
	}

	if err := h.validator.Struct(req); err != nil {
		return h.render(c, fiber.StatusBadRequest, req, utils.ValidationMessage(err), "")
	}

	res, err := h.foodService.AddFoodItem(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFoodNameRequired):
			return h.render(c, fiber.StatusBadRequest, req, domain.MessageFailedFoodNameIsRequired, "")
		case errors.Is(err, domain.ErrInvalidExpiryDate):
			return h.render(c, fiber.StatusBadRequest, req, err.Error(), "")
		default:
			log.Errorf("add food item from form: %v", err)
			return h.render(c, fiber.StatusInternalServerError, req, domain.MessagePageFailedSaveItem, "")
		}
	}

	query := url.Values{}
	query.Set("added", res.Name)
	query.Set("expires", res.ExpiryDate)
	return c.Redirect("/?"+query.Encode(), fiber.StatusSeeOther)
}

func (h *pageHandler) DeleteFoodItem(c *fiber.Ctx) error {
	req := domain.DeleteFoodItemRequest{}
	if err := c.BodyParser(&req); err != nil {
		return h.render(c, fiber.StatusBadRequest, domain.AddFoodItemRequest{}, domain.ErrInvalidFoodItemID.Error(), "")
	}

	if err := h.validator.Struct(req); err != nil {
		return h.render(c, fiber.StatusBadRequest, domain.AddFoodItemRequest{}, domain.ErrInvalidFoodItemID.Error(), "")
	}

	query := url.Values{}
	query.Set("deleted", strconv.FormatInt(req.ID, 10))

	item, err := h.foodService.GetFoodItem(c.Context(), req.ID, h.foodService.Today())
	switch {
	case err == nil:
		query.Set("name", item.Name)
	case errors.Is(err, domain.ErrFoodItemNotFound):
	default:
		log.Errorf("look up food item %d: %v", req.ID, err)
		return h.render(c, fiber.StatusInternalServerError, domain.AddFoodItemRequest{}, domain.MessagePageFailedDeleteItem, "")
	}

	if err := h.foodService.DeleteFoodItem(c.Context(), req.ID); err != nil {
		log.Errorf("delete food item %d from form: %v", req.ID, err)
		return h.render(c, fiber.StatusInternalServerError, domain.AddFoodItemRequest{}, domain.MessagePageFailedDeleteItem, "")
	}

	return c.Redirect("/?"+query.Encode(), fiber.StatusSeeOther)
}

func (h *pageHandler) render(c *fiber.Ctx, status int, form domain.AddFoodItemRequest, errMessage, success string) error {
	today := h.foodService.Today()
	dashboard, err := h.foodService.GetDashboard(c.Context(), today)
	unavailable := err != nil
	if err != nil {
		log.Errorf("load dashboard for page: %v", err)
		status = fiber.StatusInternalServerError
		if errMessage == "" {
			errMessage = domain.MessagePageFailedLoadItems
		}
		dashboard = domain.DashboardResponse{Today: today.Format(domain.DateLayout)}
	}

	if form.ExpiryDate == "" {
		form.ExpiryDate = dashboard.Today
	}
	if form.Category == "" {
		form.Category = domain.Categories[0]
	}
	if form.Location == "" {
		form.Location = domain.Locations[0]
	}

	data := pageData{
		Today:                  dashboard.Today,
		Categories:             domain.Categories,
		Locations:              domain.Locations,
		Form:                   form,
		Error:                  errMessage,
		Success:                success,
		Expired:                tableView{Rows: dashboard.Expired},
		ExpiringSoon:           tableView{Rows: dashboard.ExpiringSoon},
		All:                    tableView{Rows: dashboard.All, ShowID: true},
		EmptyMessage:           domain.MessageNoItemsYet,
		NothingExpiringMessage: domain.MessageNoItemsAboutToExpire,
		NothingToManageMessage: domain.MessageNoItemsToManage,
		Unavailable:            unavailable,
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("render index: %w", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

func successMessage(c *fiber.Ctx) string {
	if name := c.Query("added"); name != "" {
		return fmt.Sprintf("Added %s (expires %s)", name, c.Query("expires"))
	}
	if id := c.Query("deleted"); id != "" {
		if name := c.Query("name"); name != "" {
			return fmt.Sprintf("Deleted %s (ID %s)", name, id)
		}
		return fmt.Sprintf("Deleted item with ID %s", id)
	}
	return ""
}
