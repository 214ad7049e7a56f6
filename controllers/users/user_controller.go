package users

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pixeldesignindia/organic-api/middlewares"
	"github.com/pixeldesignindia/organic-api/responses"
	"github.com/pixeldesignindia/organic-api/services"
)

const requestTimeout = 10 * time.Second

type Controller struct {
	users    *services.UserService
	validate *validator.Validate
}

func NewController(users *services.UserService, validate *validator.Validate) *Controller {
	return &Controller{users: users, validate: validate}
}

func (ctl *Controller) Register(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var req services.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	user, err := ctl.users.Register(ctx, req)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "User created successfully", &fiber.Map{"user": user})
}

func (ctl *Controller) Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	user, pair, err := ctl.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "User signed in successfully", &fiber.Map{
		"user":         user,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (ctl *Controller) Refresh(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	pair, err := ctl.users.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Token refreshed", &fiber.Map{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (ctl *Controller) Profile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return responses.BadRequest(c, "Invalid user ID format")
	}
	user, err := ctl.users.FindByID(ctx, userID)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Profile fetched successfully", &fiber.Map{"user": user})
}

func (ctl *Controller) UpdateProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return responses.BadRequest(c, "Invalid user ID format")
	}

	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Mobile    string `json:"mobile"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}

	fields := bson.M{}
	if req.FirstName != "" {
		fields["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		fields["last_name"] = req.LastName
	}
	if req.Mobile != "" {
		fields["mobile"] = req.Mobile
	}
	if len(fields) == 0 {
		return responses.BadRequest(c, "Nothing to update")
	}

	if err := ctl.users.UpdateProfile(ctx, userID, fields); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Profile updated successfully", nil)
}

// UpdateImage accepts a base64-encoded image payload.
func (ctl *Controller) UpdateImage(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return responses.BadRequest(c, "Invalid user ID format")
	}

	var req struct {
		Image string `json:"image" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	url, err := ctl.users.UpdateImage(ctx, userID, req.Image)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Image updated successfully", &fiber.Map{"image_url": url})
}

func (ctl *Controller) ForgotPassword(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	token, err := ctl.users.ForgotPassword(ctx, req.Email)
	if err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Password reset token issued", &fiber.Map{"reset_token": token})
}

func (ctl *Controller) ResetPassword(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var req struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest(c, "Invalid request format")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return responses.BadRequest(c, err.Error())
	}

	if err := ctl.users.ResetPassword(ctx, req.Token, req.Password); err != nil {
		return responses.Fail(c, err)
	}
	return responses.Ok(c, "Password reset successfully", nil)
}

func (ctl *Controller) Follow(c *fiber.Ctx) error {
	return ctl.followAction(c, true)
}

func (ctl *Controller) Unfollow(c *fiber.Ctx) error {
	return ctl.followAction(c, false)
}

func (ctl *Controller) followAction(c *fiber.Ctx, follow bool) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(middlewares.LoggedUserID(c))
	if err != nil {
		return responses.BadRequest(c, "Invalid user ID format")
	}
	targetID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.BadRequest(c, "Invalid target user ID format")
	}

	if follow {
		err = ctl.users.Follow(ctx, userID, targetID)
	} else {
		err = ctl.users.Unfollow(ctx, userID, targetID)
	}
	if err != nil {
		return responses.Fail(c, err)
	}
	msg := "Followed successfully"
	if !follow {
		msg = "Unfollowed successfully"
	}
	return responses.Ok(c, msg, nil)
}
