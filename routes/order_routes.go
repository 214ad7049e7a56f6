package routes

import (
	"github.com/gofiber/fiber/v2"

	orderController "github.com/pixeldesignindia/organic-api/controllers/orders"
)

func OrderRoutes(api fiber.Router, ctl *orderController.Controller) {
	api.Post("/order", ctl.Store)
	api.Get("/order/list", ctl.List)
	api.Get("/order/:id", ctl.Get)
	api.Put("/order/:id/status", ctl.UpdateStatus)
	api.Post("/order/:id/cancel", ctl.Cancel)
	api.Post("/order/:id/assign", ctl.Assign)
	api.Post("/order/:id/delivered", ctl.Delivered)
}
