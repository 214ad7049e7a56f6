package cart

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
	cart     *services.CartService
	validate *validator.Validate
}

func NewController(cart *services.CartService, validate *validator.Validate) *Controller {
	return &Controller{cart: cart, validate: validate}
}

type itemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	SkuName   string `json:"skuName" validate:"required"`
	Quantity  int    `json:"quantity"`
}

func (ctl *Controller) parse(c *fiber.Ctx) (primitive.ObjectID, itemRequest, error) {
	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return primitive.NilObjectID, itemRequest{}, responses.BadRequest(c, "Invalid user ID format")
	}
	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return primitive.NilObjectID, itemRequest{}, responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return primitive.NilObjectID, itemRequest{}, responses.BadRequest(c, err.Error())
	}
	return userID, req, nil
}

func (ctl *Controller) Add(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, req, err := ctl.parse(c)
	if err != nil {
		return err
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return responses.BadRequest(c, "Invalid product ID format")
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cartDoc, err := ctl.cart.Add(ctx, userID, productID, req.SkuName, quantity)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Successfully added to cart", &fiber.Map{
		"cart":      cartDoc,
		"cartCount": len(cartDoc.Items),
	})
}

func (ctl *Controller) SetQuantity(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, req, err := ctl.parse(c)
	if err != nil {
		return err
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return responses.BadRequest(c, "Invalid product ID format")
	}

	cartDoc, err := ctl.cart.SetQuantity(ctx, userID, productID, req.SkuName, req.Quantity)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Cart updated successfully", &fiber.Map{"cart": cartDoc})
}

func (ctl *Controller) Remove(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, req, err := ctl.parse(c)
	if err != nil {
		return err
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return responses.BadRequest(c, "Invalid product ID format")
	}

	cartDoc, err := ctl.cart.Remove(ctx, userID, productID, req.SkuName)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Removed from cart successfully", &fiber.Map{"cart": cartDoc})
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return responses.BadRequest(c, "Invalid user ID format")
	}
	cartDoc, err := ctl.cart.Get(ctx, userID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Cart fetched successfully", &fiber.Map{"cart": cartDoc})
}
