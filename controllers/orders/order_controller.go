package orders

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pixeldesignindia/organic-api/middlewares"
	"github.com/pixeldesignindia/organic-api/responses"
	"github.com/pixeldesignindia/organic-api/services"
)

const requestTimeout = 10 * time.Second

type Controller struct {
	orders   *services.OrderService
	validate *validator.Validate
}

func NewController(orders *services.OrderService, validate *validator.Validate) *Controller {
	return &Controller{orders: orders, validate: validate}
}

func (ctl *Controller) caller(c *fiber.Ctx) (primitive.ObjectID, error) {
	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return primitive.NilObjectID, responses.BadRequest(c, "Invalid user ID format")
	}
	return userID, nil
}

// Store creates an order at checkout. Line prices come from the caller.
func (ctl *Controller) Store(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := ctl.caller(c)
	if err != nil {
		return err
	}

	var req services.StoreOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	order, err := ctl.orders.Store(ctx, userID, req)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Order created successfully", &fiber.Map{"order": order})
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := ctl.caller(c)
	if err != nil {
		return err
	}
	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid order ID format")
	}

	order, err := ctl.orders.FindByID(ctx, orderID, userID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Order fetched successfully", &fiber.Map{"order": order})
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := ctl.caller(c)
	if err != nil {
		return err
	}

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	status := c.Query("status")

	orders, total, err := ctl.orders.List(ctx, userID, status, page, limit)
	if err != nil {
		return responses.Fail(c, err)
	}
	totalPages := (total + limit - 1) / limit
	return responses.Ok(c, "Orders fetched successfully", &fiber.Map{
		"orders":      orders,
		"currentPage": page,
		"totalPages":  totalPages,
		"totalOrders": total,
	})
}

// UpdateStatus transitions the order and runs the status-specific side
// effects (stock decrement on handoff, vendor payout on delivery).
func (ctl *Controller) UpdateStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid order ID format")
	}

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	order, err := ctl.orders.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Order status updated successfully", &fiber.Map{"order": order})
}

func (ctl *Controller) Cancel(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid order ID format")
	}
	order, err := ctl.orders.Cancel(ctx, orderID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Order cancelled successfully", &fiber.Map{"order": order})
}

func (ctl *Controller) Assign(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid order ID format")
	}

	var req struct {
		DeliveredBy string `json:"deliveredBy" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request body")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	if err := ctl.orders.Assign(ctx, orderID, req.DeliveredBy); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Order assigned successfully", nil)
}

func (ctl *Controller) Delivered(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid order ID format")
	}
	order, err := ctl.orders.Delivered(ctx, orderID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Order delivered successfully", &fiber.Map{"order": order})
}
