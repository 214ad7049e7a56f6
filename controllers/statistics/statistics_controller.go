package statistics

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pixeldesignindia/organic-api/middlewares"
	"github.com/pixeldesignindia/organic-api/responses"
	"github.com/pixeldesignindia/organic-api/services"
)

const requestTimeout = 30 * time.Second

type Controller struct {
	stats *services.StatisticsService
}

func NewController(stats *services.StatisticsService) *Controller {
	return &Controller{stats: stats}
}

func (ctl *Controller) Overview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	overview, err := ctl.stats.Overview(ctx)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Overview fetched successfully", &fiber.Map{"overview": overview})
}

func (ctl *Controller) OrderStatusCounts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	counts, err := ctl.stats.OrderStatusCounts(ctx)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Order status counts fetched successfully", &fiber.Map{"counts": counts})
}

func (ctl *Controller) Revenue(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	revenue, err := ctl.stats.Revenue(ctx)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Revenue fetched successfully", &fiber.Map{"revenue": revenue})
}

func (ctl *Controller) MonthlySales(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	sales, err := ctl.stats.MonthlySales(ctx)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Monthly sales fetched successfully", &fiber.Map{"sales": sales})
}

func (ctl *Controller) TopProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil {
		limit = 10
	}
	top, err := ctl.stats.TopProducts(ctx, limit)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Top products fetched successfully", &fiber.Map{"products": top})
}

// VendorDashboard aggregates the calling vendor's sales.
func (ctl *Controller) VendorDashboard(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	sellerID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return responses.BadRequest(c, "Invalid user ID format")
	}
	dashboard, err := ctl.stats.VendorDashboard(ctx, sellerID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Vendor dashboard fetched successfully", &fiber.Map{"dashboard": dashboard})
}
