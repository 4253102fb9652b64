package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"contactbook_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global. Urutan penting:
// recovery paling luar supaya panic di middleware lain ikut tertangkap.
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Applying global middlewares...")
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
