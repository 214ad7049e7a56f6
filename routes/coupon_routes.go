package routes

import (
	"github.com/gofiber/fiber/v2"

	couponController "github.com/pixeldesignindia/organic-api/controllers/coupons"
)

func CouponRoutes(api fiber.Router, ctl *couponController.Controller) {
	api.Post("/coupon", ctl.Create)
	api.Get("/coupon/list", ctl.List)
	api.Get("/coupon/:code", ctl.Find)
	api.Put("/coupon/:id", ctl.Update)
	api.Delete("/coupon/:id", ctl.Delete)
}
