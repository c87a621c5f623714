package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"grofast_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware stack.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
