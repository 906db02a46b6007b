package routes

import (
	"Food-Waste-Tracker/internal/api/handlers"
	"Food-Waste-Tracker/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	FoodHandler handlers.FoodHandler
	PageHandler handlers.PageHandler
	Middleware  middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.FoodItems()
	c.Pages()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items")
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboard)
	foodItems.Post("/export", c.FoodHandler.ExportFoodItems)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Pages() {
	c.App.Get("/", c.PageHandler.Index)
	c.App.Post("/items", c.PageHandler.AddFoodItem)
	c.App.Post("/items/delete", c.PageHandler.DeleteFoodItem)
}
