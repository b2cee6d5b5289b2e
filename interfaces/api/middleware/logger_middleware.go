package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Kimnjuki/faceless-sub001/pkg/logger"
)

// LoggerMiddleware logs each request with its duration and status code.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		logger.Default().Log(logger.LogEntry{
			Level:    logger.LevelInfo,
			Category: logger.CategoryAPI,
			Action:   "request",
			Message:  c.Method() + " " + c.Path(),
			Duration: time.Since(start).String(),
			Data: map[string]interface{}{
				"status": c.Response().StatusCode(),
				"ip":     c.IP(),
			},
		})

		return err
	}
}
