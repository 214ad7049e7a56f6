package routes

import (
	"github.com/gofiber/fiber/v2"

	categoryController "github.com/pixeldesignindia/organic-api/controllers/categories"
)

func CategoryRoutes(api fiber.Router, ctl *categoryController.Controller) {
	api.Get("/category/list", ctl.List)
	api.Post("/category", ctl.Create)
	api.Get("/category/:id", ctl.Get)
	api.Put("/category/:id", ctl.Update)
	api.Delete("/category/:id", ctl.Delete)
}
