package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		LoggerMiddleware(output io.Writer, timezone string) fiber.Handler
		LimiterMiddleware(max int) fiber.Handler
		RecoverMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

func (m *middleware) LoggerMiddleware(output io.Writer, timezone string) fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   timezone,
		Output:     output,
	})
}

// LimiterMiddleware allows max requests per second per client; max <= 0
// disables limiting.
func (m *middleware) LimiterMiddleware(max int) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Second,
	})
}

func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New()
}
