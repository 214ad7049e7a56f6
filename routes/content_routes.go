package routes

import (
	"github.com/gofiber/fiber/v2"

	contentController "github.com/pixeldesignindia/organic-api/controllers/content"
)

func ContentRoutes(api fiber.Router, ctl *contentController.Controller) {
	api.Get("/banner/list", ctl.ListBanners)
	api.Post("/banner", ctl.CreateBanner)
	api.Put("/banner/:id", ctl.UpdateBanner)
	api.Delete("/banner/:id", ctl.DeleteBanner)

	api.Get("/faq/list", ctl.ListFAQs)
	api.Post("/faq", ctl.CreateFAQ)
	api.Put("/faq/:id", ctl.UpdateFAQ)
	api.Delete("/faq/:id", ctl.DeleteFAQ)

	api.Get("/intro/list", ctl.ListIntros)
	api.Post("/intro", ctl.CreateIntro)
	api.Put("/intro/:id", ctl.UpdateIntro)
	api.Delete("/intro/:id", ctl.DeleteIntro)

	api.Post("/configuration", ctl.SetConfiguration)
	api.Get("/configuration/:key", ctl.GetConfiguration)
}
