package routes

import (
	"github.com/gofiber/fiber/v2"

	wishlistController "github.com/pixeldesignindia/organic-api/controllers/wishlist"
)

func WishlistRoutes(api fiber.Router, ctl *wishlistController.Controller) {
	api.Get("/wishlist", ctl.Get)
	api.Post("/wishlist/:id", ctl.Add)
	api.Delete("/wishlist/:id", ctl.Remove)
}
