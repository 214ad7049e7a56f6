package routes

import (
	"github.com/gofiber/fiber/v2"

	userController "github.com/pixeldesignindia/organic-api/controllers/users"
)

func UserRoutes(api fiber.Router, ctl *userController.Controller) {
	api.Post("/user/register", ctl.Register)
	api.Post("/user/login", ctl.Login)
	api.Post("/user/refresh-token", ctl.Refresh)
	api.Post("/user/forgot-password", ctl.ForgotPassword)
	api.Post("/user/reset-password", ctl.ResetPassword)

	api.Get("/user/profile", ctl.Profile)
	api.Put("/user/profile", ctl.UpdateProfile)
	api.Post("/user/image", ctl.UpdateImage)
	api.Post("/user/follow/:id", ctl.Follow)
	api.Post("/user/unfollow/:id", ctl.Unfollow)
}
