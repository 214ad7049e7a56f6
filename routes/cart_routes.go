package routes

import (
	"github.com/gofiber/fiber/v2"

	cartController "github.com/pixeldesignindia/organic-api/controllers/cart"
)

func CartRoutes(api fiber.Router, ctl *cartController.Controller) {
	api.Get("/cart", ctl.Get)
	api.Post("/cart/add", ctl.Add)
	api.Put("/cart/quantity", ctl.SetQuantity)
	api.Post("/cart/remove", ctl.Remove)
}
