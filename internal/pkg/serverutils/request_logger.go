package serverutils

import (
	"time"

	"photo-portfolio-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func RequestLoggerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		log.Info("http", "request completed", map[string]interface{}{
			"method":      ctx.Method(),
			"path":        ctx.Path(),
			"status":      ctx.Response().StatusCode(),
			"duration_ms": time.Since(start).Milliseconds(),
		})

		return err
	}
}
