package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tutordash/frontend/utils"
)

// LoggingMiddleware logs every request with a short id so overlapping
// requests can be told apart in the output.
func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.NewString()[:8]
		c.Locals("request_id", reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		method := c.Method()
		reset := "\033[0m"

		logger.Printf("[%s] %s %s%s%s %s %s%d%s %v",
			reqID,
			c.IP(),
			utils.MethodColor(method), method, reset,
			c.Path(),
			utils.StatusColor(status), status, reset,
			time.Since(start),
		)

		return err
	}
}
