package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	loggerMw "banksoal_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dalam urutan yang benar:
// recovery paling luar, lalu logger, CORS, dan rate limiter.
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Registering global middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
