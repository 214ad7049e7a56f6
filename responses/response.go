package responses

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pixeldesignindia/organic-api/apperror"
)

// ApiResponse is the JSON envelope every endpoint returns.
type ApiResponse struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result,omitempty"`
}

// Ok writes a 200 envelope.
func Ok(c *fiber.Ctx, message string, result *fiber.Map) error {
	return c.Status(fiber.StatusOK).JSON(ApiResponse{
		Status:  fiber.StatusOK,
		Message: message,
		Result:  result,
	})
}

// Fail maps a service error to its HTTP status and writes the envelope.
// Non-apperror values become a generic 500 so internals never leak.
func Fail(c *fiber.Ctx, err error) error {
	status := apperror.StatusOf(err)
	message := "Something went wrong, please try again later"
	var ae *apperror.Error
	if errors.As(err, &ae) {
		message = ae.Message
	}
	return c.Status(status).JSON(ApiResponse{
		Status:  status,
		Message: message,
	})
}

// BadRequest is a shorthand for controller-side validation failures.
func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, apperror.BadRequest(message))
}
