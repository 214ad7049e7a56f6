package routes

import (
	"github.com/gofiber/fiber/v2"

	productController "github.com/pixeldesignindia/organic-api/controllers/products"
)

func ProductRoutes(api fiber.Router, ctl *productController.Controller) {
	// Public catalog surface.
	api.Get("/product/search", ctl.Search)
	api.Get("/product/filter", ctl.Search)
	api.Get("/product/get/:id", ctl.Get)
	api.Get("/product/comments/:id", ctl.Comments)

	api.Post("/product", ctl.Create)
	api.Put("/product/:id", ctl.Update)
	api.Delete("/product/:id", ctl.Delete)

	api.Post("/product/:id/like", ctl.AddLike)
	api.Delete("/product/:id/like", ctl.RemoveLike)
	api.Post("/product/:id/comment", ctl.AddComment)
	api.Post("/product/:id/bookmark", ctl.AddBookmark)
	api.Delete("/product/:id/bookmark", ctl.RemoveBookmark)
	api.Get("/product/:id/bookmark", ctl.HasBookmarked)
	api.Post("/product/:id/rating", ctl.AddRating)
	api.Post("/product/:id/tag", ctl.AddTag)
	api.Post("/product/:id/image", ctl.UpdateImage)
	api.Post("/product/:id/video", ctl.UpdateVideo)
}
