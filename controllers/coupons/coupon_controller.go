package coupons

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pixeldesignindia/organic-api/models"
	"github.com/pixeldesignindia/organic-api/responses"
	"github.com/pixeldesignindia/organic-api/services"
)

const requestTimeout = 10 * time.Second

type Controller struct {
	coupons  *services.CouponService
	validate *validator.Validate
}

func NewController(coupons *services.CouponService, validate *validator.Validate) *Controller {
	return &Controller{coupons: coupons, validate: validate}
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(coupon); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	created, err := ctl.coupons.Create(ctx, coupon)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Coupon created successfully", &fiber.Map{"coupon": created})
}

// Find reports whether the coupon is redeemable; reading an expired coupon
// retires it.
func (ctl *Controller) Find(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	code := c.Params("code")
	if code == "" {
		return responses.BadRequest(c, "Coupon code is required")
	}
	coupon, err := ctl.coupons.FindByCode(ctx, code)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Coupon fetched successfully", &fiber.Map{"coupon": coupon})
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	coupons, err := ctl.coupons.List(ctx)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Coupons fetched successfully", &fiber.Map{"coupons": coupons})
}

// updateFields keeps only the coupon attributes the caller actually sent.
func updateFields(discount float64, expirationDate int64) bson.M {
	fields := bson.M{}
	if discount > 0 {
		fields["discount"] = discount
	}
	if expirationDate > 0 {
		fields["expirationDate"] = expirationDate
	}
	return fields
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid coupon ID format")
	}

	var req struct {
		Discount       float64 `json:"discount"`
		ExpirationDate int64   `json:"expirationDate"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}

	fields := updateFields(req.Discount, req.ExpirationDate)
	if len(fields) == 0 {
		return responses.BadRequest(c, "Nothing to update")
	}
	if err := ctl.coupons.Update(ctx, id, fields); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Coupon updated successfully", nil)
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid coupon ID format")
	}
	if err := ctl.coupons.Delete(ctx, id); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Coupon removed successfully", nil)
}
