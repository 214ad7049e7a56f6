package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pixeldesignindia/organic-api/apperror"
	"github.com/pixeldesignindia/organic-api/responses"
	"github.com/pixeldesignindia/organic-api/utils"
)

// openPrefixes lists the /api/v1 paths that skip bearer auth.
var openPrefixes = []string{
	"/api/v1/user/login",
	"/api/v1/user/register",
	"/api/v1/user/refresh-token",
	"/api/v1/user/forgot-password",
	"/api/v1/user/reset-password",
	"/api/v1/product/search",
	"/api/v1/product/filter",
	"/api/v1/product/comments",
	"/api/v1/product/get",
	"/api/v1/category/list",
	"/api/v1/banner/list",
	"/api/v1/faq/list",
	"/api/v1/intro/list",
	"/api/v1/payment/callback",
	"/api/v1/status",
}

// Auth verifies the bearer token and injects the caller identity into
// locals and the loggeduserid request header consumed by services.
func Auth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, p := range openPrefixes {
			if strings.HasPrefix(path, p) {
				return c.Next()
			}
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return responses.Fail(c, apperror.Unauthorized("No auth token, access denied"))
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			return responses.Fail(c, apperror.Unauthorized("Invalid authorization header format"))
		}

		userID, err := utils.VerifyToken(bearerToken[1], jwtSecret)
		if err != nil {
			return responses.Fail(c, err)
		}

		c.Locals("userId", userID)
		c.Request().Header.Set("loggeduserid", userID)
		return c.Next()
	}
}

// LoggedUserID reads the caller id the Auth middleware injected.
func LoggedUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userId").(string); ok {
		return id
	}
	return c.Get("loggeduserid")
}
