package routes

import (
	"github.com/gofiber/fiber/v2"

	roleController "github.com/pixeldesignindia/organic-api/controllers/roles"
)

func RoleRoutes(api fiber.Router, ctl *roleController.Controller) {
	api.Post("/role", ctl.Create)
	api.Get("/role/list", ctl.List)
	api.Get("/role/:id", ctl.Get)
	api.Put("/role/:id/permissions", ctl.AssignPermissions)
	api.Delete("/role/:id", ctl.Delete)
}
