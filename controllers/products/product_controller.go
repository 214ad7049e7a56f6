package products

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pixeldesignindia/organic-api/middlewares"
	"github.com/pixeldesignindia/organic-api/models"
	"github.com/pixeldesignindia/organic-api/responses"
	"github.com/pixeldesignindia/organic-api/services"
)

const requestTimeout = 10 * time.Second

type Controller struct {
	products *services.ProductService
	validate *validator.Validate
}

func NewController(products *services.ProductService, validate *validator.Validate) *Controller {
	return &Controller{products: products, validate: validate}
}

func pagination(c *fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	ownerID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return responses.BadRequest(c, "Invalid user ID format")
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return responses.BadRequest(c, "Error parsing product data")
	}
	if err := ctl.validate.Struct(product); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	created, err := ctl.products.Create(ctx, ownerID, product)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Product added successfully", &fiber.Map{"product": created})
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid product ID format")
	}
	product, err := ctl.products.FindByID(ctx, id)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Product fetched successfully", &fiber.Map{"product": product})
}

func (ctl *Controller) Search(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	page, limit := pagination(c)
	name := c.Query("name")

	var categoryID primitive.ObjectID
	if raw := c.Query("category"); raw != "" {
		parsed, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return responses.BadRequest(c, "Invalid category ID format")
		}
		categoryID = parsed
	}

	products, total, err := ctl.products.Search(ctx, name, categoryID, page, limit)
	if err != nil {
		return responses.Fail(c, err)
	}
	totalPages := (total + limit - 1) / limit
	return responses.Ok(c, "Fetched products", &fiber.Map{
		"products":      products,
		"currentPage":   page,
		"totalPages":    totalPages,
		"totalProducts": total,
	})
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid product ID format")
	}

	var req struct {
		Name        string       `json:"name"`
		Description string       `json:"description"`
		SKUs        []models.SKU `json:"skus"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Error parsing product data")
	}

	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.SKUs != nil {
		fields["skus"] = req.SKUs
	}
	if len(fields) == 0 {
		return responses.BadRequest(c, "Nothing to update")
	}

	if err := ctl.products.Update(ctx, id, fields); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Product updated successfully", nil)
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid product ID format")
	}
	if err := ctl.products.Delete(ctx, id); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Product removed successfully", nil)
}

func (ctl *Controller) callerAndProduct(c *fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, error) {
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

func (ctl *Controller) AddLike(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, productID, err := ctl.callerAndProduct(c)
	if err != nil {
		return err
	}
	if err := ctl.products.AddLike(ctx, productID, userID); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Liked successfully", nil)
}

func (ctl *Controller) RemoveLike(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, productID, err := ctl.callerAndProduct(c)
	if err != nil {
		return err
	}
	if err := ctl.products.RemoveLike(ctx, productID, userID); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Like removed successfully", nil)
}

func (ctl *Controller) AddComment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, productID, err := ctl.callerAndProduct(c)
	if err != nil {
		return err
	}

	var req struct {
		Text string `json:"text" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	if err := ctl.products.AddComment(ctx, productID, userID, req.Text); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Comment added successfully", nil)
}

// Comments is a public read of a product's live comments.
func (ctl *Controller) Comments(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid product ID format")
	}
	product, err := ctl.products.FindByID(ctx, id)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Comments fetched successfully", &fiber.Map{"comments": product.Comments})
}

func (ctl *Controller) AddBookmark(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, productID, err := ctl.callerAndProduct(c)
	if err != nil {
		return err
	}
	if err := ctl.products.AddBookmark(ctx, productID, userID); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Bookmarked successfully", nil)
}

func (ctl *Controller) RemoveBookmark(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, productID, err := ctl.callerAndProduct(c)
	if err != nil {
		return err
	}
	if err := ctl.products.RemoveBookmark(ctx, productID, userID); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Bookmark removed successfully", nil)
}

func (ctl *Controller) HasBookmarked(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, productID, err := ctl.callerAndProduct(c)
	if err != nil {
		return err
	}
	bookmarked, err := ctl.products.HasBookmarked(ctx, productID, userID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Bookmark status fetched", &fiber.Map{"bookmarked": bookmarked})
}

func (ctl *Controller) AddRating(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, productID, err := ctl.callerAndProduct(c)
	if err != nil {
		return err
	}

	var req struct {
		Value int `json:"value" validate:"required,min=1,max=5"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	if err := ctl.products.AddRating(ctx, productID, userID, req.Value); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Rating added successfully", nil)
}

func (ctl *Controller) AddTag(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, productID, err := ctl.callerAndProduct(c)
	if err != nil {
		return err
	}

	var req struct {
		Name string `json:"name" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	if err := ctl.products.AddTag(ctx, productID, userID, req.Name); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Tag added successfully", nil)
}

// UpdateImage accepts a base64-encoded image payload.
func (ctl *Controller) UpdateImage(c *fiber.Ctx) error {
	return ctl.upload(c, false)
}

// UpdateVideo accepts a base64-encoded video payload.
func (ctl *Controller) UpdateVideo(c *fiber.Ctx) error {
	return ctl.upload(c, true)
}

func (ctl *Controller) upload(c *fiber.Ctx, video bool) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid product ID format")
	}

	var req struct {
		Payload string `json:"payload" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	var url string
	if video {
		url, err = ctl.products.UpdateVideo(ctx, productID, req.Payload)
	} else {
		url, err = ctl.products.UpdateImage(ctx, productID, req.Payload)
	}
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Upload stored successfully", &fiber.Map{"url": url})
}
