package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"learn-loop/internal/delivery/http/middleware"
	"learn-loop/internal/delivery/http/response"
	ucauth "learn-loop/internal/usecase/auth"
)

type AuthHandler struct {
	auth *ucauth.Service
}

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

func NewAuthHandler(auth *ucauth.Service) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/login", h.Login)
}

// Login authenticates, creating the account when the identifier has never
// been seen.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "User ID and password required", err)
	}

	usr, token, err := h.auth.Login(c.Context(), ucauth.LoginInput{UserID: req.UserID, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, ucauth.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "User ID and password required", err)
		case errors.Is(err, ucauth.ErrInvalidCredentials):
			return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidCredentials, err)
		default:
			return err
		}
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  usr,
	})
}
