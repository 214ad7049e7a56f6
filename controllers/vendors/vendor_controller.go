package vendors

import (
	"context"
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
	vendors  *services.VendorService
	validate *validator.Validate
}

func NewController(vendors *services.VendorService, validate *validator.Validate) *Controller {
	return &Controller{vendors: vendors, validate: validate}
}

func (ctl *Controller) Apply(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return responses.BadRequest(c, "Invalid user ID format")
	}

	var req services.VendorApplication
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	vendor, err := ctl.vendors.Apply(ctx, userID, req)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Vendor application submitted successfully", &fiber.Map{"vendor": vendor})
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	vendors, err := ctl.vendors.ListByStatus(ctx, c.Query("status"))
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Vendors fetched successfully", &fiber.Map{"vendors": vendors})
}

// UpdateStatus approves or rejects an application.
func (ctl *Controller) UpdateStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	vendorID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid vendor ID format")
	}

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	vendor, err := ctl.vendors.UpdateStatus(ctx, vendorID, req.Status)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Vendor status updated successfully", &fiber.Map{"vendor": vendor})
}

func (ctl *Controller) Me(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return responses.BadRequest(c, "Invalid user ID format")
	}
	vendor, err := ctl.vendors.FindByUser(ctx, userID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Vendor fetched successfully", &fiber.Map{"vendor": vendor})
}
