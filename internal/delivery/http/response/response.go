// Package response holds the error envelope and the message strings clients
// key on. Success bodies are endpoint-specific and emitted by the handlers
// directly; only failures share a shape.
package response

import "github.com/gofiber/fiber/v3"

type ErrorBody struct {
	Message string `json:"message"`
}

const (
	MessageAuthRequired       = "Authentication required"
	MessageInvalidToken       = "Invalid token"
	MessageInvalidCredentials = "Invalid credentials"
	MessageForbidden          = "Admin access required"
	MessageUserNotFound       = "User not found"
	MessageServerError        = "Server error"
)

// Fail writes the error envelope with the given status.
func Fail(c fiber.Ctx, status int, message string) error {
	if status < 400 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = MessageServerError
	}
	return c.Status(status).JSON(ErrorBody{Message: message})
}
