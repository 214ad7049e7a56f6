package wishlist

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pixeldesignindia/organic-api/middlewares"
	"github.com/pixeldesignindia/organic-api/responses"
	"github.com/pixeldesignindia/organic-api/services"
)

const requestTimeout = 10 * time.Second

type Controller struct {
	wishlists *services.WishlistService
}

func NewController(wishlists *services.WishlistService) *Controller {
	return &Controller{wishlists: wishlists}
}

func (ctl *Controller) ids(c *fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, error) {
	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, responses.BadRequest(c, "Invalid user ID format")
	}
	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, responses.BadRequest(c, "Invalid product ID format")
	}
	return userID, productID, nil
}

func (ctl *Controller) Add(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, productID, err := ctl.ids(c)
	if err != nil {
		return err
	}
	list, err := ctl.wishlists.Add(ctx, userID, productID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Added to wishlist successfully", &fiber.Map{"wishlist": list})
}

func (ctl *Controller) Remove(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, productID, err := ctl.ids(c)
	if err != nil {
		return err
	}
	list, err := ctl.wishlists.Remove(ctx, userID, productID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Removed from wishlist successfully", &fiber.Map{"wishlist": list})
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return responses.BadRequest(c, "Invalid user ID format")
	}
	list, err := ctl.wishlists.Get(ctx, userID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Wishlist fetched successfully", &fiber.Map{"wishlist": list})
}
