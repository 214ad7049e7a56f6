// Package apperror is the single error channel used between services and
// controllers. Every failure a service can produce carries an HTTP-equivalent
// status and a client-safe message.
package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error   { return New(fiber.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(fiber.StatusUnauthorized, message) }
func NotFound(message string) *Error     { return New(fiber.StatusNotFound, message) }
func Conflict(message string) *Error     { return New(fiber.StatusConflict, message) }
func Upstream(message string) *Error     { return New(fiber.StatusBadGateway, message) }
func Internal(message string) *Error     { return New(fiber.StatusInternalServerError, message) }

// StatusOf maps any error to its HTTP status, treating non-Error values as
// internal failures.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return fiber.StatusInternalServerError
}
