package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"learn-loop/internal/delivery/http/middleware"
	"learn-loop/internal/delivery/http/response"
	uccareer "learn-loop/internal/usecase/career"
)

type CareerHandler struct {
	careers *uccareer.Service
}

func NewCareerHandler(careers *uccareer.Service) *CareerHandler {
	return &CareerHandler{careers: careers}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/career-recommendations", h.Recommendations)
}

func (h *CareerHandler) Recommendations(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageAuthRequired, nil)
	}

	careers, err := h.careers.Recommendations(c.Context(), userID)
	if err != nil {
		if errors.Is(err, uccareer.ErrPreferencesNotSet) {
			return middleware.NewAppError(fiber.StatusBadRequest, "User preferences not set", err)
		}
		return err
	}

	return c.JSON(fiber.Map{"careers": careers})
}
