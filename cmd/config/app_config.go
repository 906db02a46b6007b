package config

import (
	"Food-Waste-Tracker/domain"
	"Food-Waste-Tracker/internal/api/handlers"
	"Food-Waste-Tracker/internal/api/presenters"
	"Food-Waste-Tracker/internal/api/routes"
	"Food-Waste-Tracker/internal/middleware"
	"Food-Waste-Tracker/internal/utils"
	"Food-Waste-Tracker/internal/utils/storage"
	"Food-Waste-Tracker/pkg/export"
	"Food-Waste-Tracker/pkg/food"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type Dependencies struct {
	LogOutput    io.Writer
	Timezone     string
	RateLimitMax int
	Now          func() time.Time
	S3           storage.AwsS3
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	cfg := utils.Settings()

	// setting up logging
	if err := os.MkdirAll(cfg.LogDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	file, err := os.OpenFile(
		filepath.Join(cfg.LogDir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	now, location, err := Clock(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	s3, err := storage.NewAwsS3(context.Background(), storage.S3Config{
		Bucket:    cfg.AWSS3Bucket,
		Region:    cfg.AWSS3Region,
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		return nil, err
	}
	if s3 == nil {
		log.Info("AWS_S3_BUCKET not set, exports are disabled")
	}

	return BuildApp(db, Dependencies{
		LogOutput:    file,
		Timezone:     location.String(),
		RateLimitMax: cfg.RateLimitMax,
		Now:          now,
		S3:           s3,
	}), nil
}

// Clock returns the wall clock in the configured timezone, which decides
// what "today" is for every command.
func Clock(timezone string) (func() time.Time, *time.Location, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return func() time.Time { return time.Now().In(location) }, location, nil
}

func BuildApp(db *gorm.DB, deps Dependencies) *fiber.App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:      "Food Waste Tracker",
		ErrorHandler: errorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	app.Use(middlewares.RecoverMiddleware())
	if deps.LogOutput != nil {
		app.Use(middlewares.LoggerMiddleware(deps.LogOutput, deps.Timezone))
	}
	app.Use(middlewares.LimiterMiddleware(deps.RateLimitMax))

	// Repository
	foodRepository := food.NewFoodRepository(db)

	// Service
	foodService := food.NewFoodService(foodRepository, deps.Now)
	exportService := export.NewExportService(foodService, deps.S3)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, exportService, validator)
	pageHandler := handlers.NewPageHandler(foodService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		FoodHandler: foodHandler,
		PageHandler: pageHandler,
		Middleware:  middlewares,
	}
	routesConfig.Setup()
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return presenters.ErrorResponse(c, code, domain.MessageFailedProcessRequest, err)
}
