package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"contactbook_backend/internals/features/contacts/controller"
	"contactbook_backend/internals/middlewares"
)

// ContactRoutes memasang seluruh endpoint kontak di bawah group /api.
// Route statis (/search, /emails) didaftarkan sebelum /:id.
func ContactRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContactController(db)

	uploadLimiter := middlewares.UploadRateLimiter()

	contacts := api.Group("/contacts")
	contacts.Get("/", ctrl.GetContacts)
	contacts.Post("/", uploadLimiter, ctrl.CreateContact)
	contacts.Post("/search", ctrl.SearchContacts)
	contacts.Post("/emails", ctrl.GetEmails)
	contacts.Delete("/", ctrl.DeleteContacts)
	contacts.Get("/:id", ctrl.GetContact)
	contacts.Post("/:id", uploadLimiter, ctrl.UpdateContact)

	api.Get("/countries", ctrl.GetCountries)
}
