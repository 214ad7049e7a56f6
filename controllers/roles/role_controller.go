package roles

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pixeldesignindia/organic-api/models"
	"github.com/pixeldesignindia/organic-api/responses"
	"github.com/pixeldesignindia/organic-api/services"
)

const requestTimeout = 10 * time.Second

type Controller struct {
	roles    *services.RoleService
	validate *validator.Validate
}

func NewController(roles *services.RoleService, validate *validator.Validate) *Controller {
	return &Controller{roles: roles, validate: validate}
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var role models.Role
	if err := c.BodyParser(&role); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(role); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	created, err := ctl.roles.Create(ctx, role)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Role created successfully", &fiber.Map{"role": created})
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid role ID format")
	}
	role, err := ctl.roles.FindByID(ctx, id)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Role fetched successfully", &fiber.Map{"role": role})
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	roles, err := ctl.roles.List(ctx)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Roles fetched successfully", &fiber.Map{"roles": roles})
}

// AssignPermissions replaces the role's whole permission list.
func (ctl *Controller) AssignPermissions(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid role ID format")
	}

	var req struct {
		Permissions []models.Permission `json:"permissions" validate:"required,dive"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	if err := ctl.roles.AssignPermissions(ctx, id, req.Permissions); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Permissions assigned successfully", nil)
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid role ID format")
	}
	if err := ctl.roles.Delete(ctx, id); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Role removed successfully", nil)
}
