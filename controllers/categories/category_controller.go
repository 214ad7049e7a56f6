package categories

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
	categories *services.CategoryService
	validate   *validator.Validate
}

func NewController(categories *services.CategoryService, validate *validator.Validate) *Controller {
	return &Controller{categories: categories, validate: validate}
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(category); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	created, err := ctl.categories.Create(ctx, category)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Category created successfully", &fiber.Map{"category": created})
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	categories, err := ctl.categories.List(ctx)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Categories fetched successfully", &fiber.Map{"categories": categories})
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid category ID format")
	}
	category, err := ctl.categories.FindByID(ctx, id)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Category fetched successfully", &fiber.Map{"category": category})
}

func (ctl *Controller) Update(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid category ID format")
	}

	var req struct {
		Name     string `json:"name"`
		ImageURL string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}

	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.ImageURL != "" {
		fields["image_url"] = req.ImageURL
	}
	if len(fields) == 0 {
		return responses.BadRequest(c, "Nothing to update")
	}

	if err := ctl.categories.Update(ctx, id, fields); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Category updated successfully", nil)
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid category ID format")
	}
	if err := ctl.categories.Delete(ctx, id); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Category removed successfully", nil)
}
