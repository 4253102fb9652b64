// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactRoutes "contactbook_backend/internals/features/contacts/route"
	"contactbook_backend/internals/middlewares"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// koneksi DB ikut di context request untuk handler ad-hoc
	app.Use(middlewares.DBMiddleware(db))

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Contact routes...")
	api := app.Group("/api")
	contactRoutes.ContactRoutes(api, db)
}
