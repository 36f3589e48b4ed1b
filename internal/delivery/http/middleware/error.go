package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"

	"learn-loop/internal/delivery/http/response"
)

// AppError carries the HTTP status a handler wants alongside the underlying
// cause. Causes are logged server-side, never serialized.
type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware converts handler errors into the error envelope. Anything that
// is not an AppError (including recovered panics) becomes a generic 500.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered | path=%s err=%v", c.Path(), r)
				err = response.Fail(c, fiber.StatusInternalServerError, response.MessageServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) && appErr.StatusCode >= 400 && appErr.StatusCode < 500 {
			return response.Fail(c, appErr.StatusCode, appErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code >= 400 && fiberErr.Code < 500 {
			return response.Fail(c, fiberErr.Code, fiberErr.Message)
		}

		m.logger.Printf("request failed | path=%s err=%v", c.Path(), err)
		return response.Fail(c, fiber.StatusInternalServerError, response.MessageServerError)
	}
}
