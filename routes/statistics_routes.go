package routes

import (
	"github.com/gofiber/fiber/v2"

	statisticsController "github.com/pixeldesignindia/organic-api/controllers/statistics"
)

func StatisticsRoutes(api fiber.Router, ctl *statisticsController.Controller) {
	api.Get("/statistics/overview", ctl.Overview)
	api.Get("/statistics/order-status", ctl.OrderStatusCounts)
	api.Get("/statistics/revenue", ctl.Revenue)
	api.Get("/statistics/monthly-sales", ctl.MonthlySales)
	api.Get("/statistics/top-products", ctl.TopProducts)
	api.Get("/statistics/vendor-dashboard", ctl.VendorDashboard)
}
