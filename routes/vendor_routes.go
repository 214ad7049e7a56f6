package routes

import (
	"github.com/gofiber/fiber/v2"

	vendorController "github.com/pixeldesignindia/organic-api/controllers/vendors"
)

func VendorRoutes(api fiber.Router, ctl *vendorController.Controller) {
	api.Post("/vendor/apply", ctl.Apply)
	api.Get("/vendor/me", ctl.Me)
	api.Get("/vendor/list", ctl.List)
	api.Put("/vendor/:id/status", ctl.UpdateStatus)
}
