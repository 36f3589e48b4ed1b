package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"learn-loop/internal/catalog"
	"learn-loop/internal/delivery/http/middleware"
	"learn-loop/internal/delivery/http/response"
	"learn-loop/internal/domain/user"
	ucuser "learn-loop/internal/usecase/user"
)

type UserHandler struct {
	users *ucuser.Service
}

type preferencesRequest struct {
	Interests []string `json:"interests"`
	Language  string   `json:"language"`
}

type careerRequest struct {
	Career *catalog.Career `json:"career"`
}

type skillsRequest struct {
	Skills map[string]bool `json:"skills"`
}

func NewUserHandler(users *ucuser.Service) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/user/preferences", h.SavePreferences)
	r.Post("/user/career", h.SelectCareer)
	r.Get("/user/profile", h.Profile)
	r.Post("/user/skills", h.SaveSkills)
	r.Get("/roadmap", h.Roadmap)
	r.Get("/user/stats", h.Stats)
	r.Delete("/user/account", h.DeleteAccount)
}

func (h *UserHandler) SavePreferences(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageAuthRequired, nil)
	}

	var req preferencesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Please select at least 2 interests", err)
	}

	if err := h.users.SavePreferences(c.Context(), userID, req.Interests, req.Language); err != nil {
		if errors.Is(err, ucuser.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Please select at least 2 interests", err)
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *UserHandler) SelectCareer(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageAuthRequired, nil)
	}

	var req careerRequest
	if err := c.Bind().Body(&req); err != nil || req.Career == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Career selection required", err)
	}

	if err := h.users.SelectCareer(c.Context(), userID, *req.Career); err != nil {
		if errors.Is(err, ucuser.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Career selection required", err)
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *UserHandler) Profile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageAuthRequired, nil)
	}

	usr, err := h.users.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, response.MessageUserNotFound, err)
		}
		return err
	}

	return c.JSON(usr)
}

func (h *UserHandler) SaveSkills(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageAuthRequired, nil)
	}

	var req skillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Skills payload required", err)
	}

	if err := h.users.MergeSkills(c.Context(), userID, req.Skills); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *UserHandler) Roadmap(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageAuthRequired, nil)
	}

	rm, err := h.users.GetRoadmap(c.Context(), userID)
	if err != nil {
		if errors.Is(err, ucuser.ErrCareerNotSelected) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Career not selected", err)
		}
		return err
	}

	return c.JSON(rm)
}

func (h *UserHandler) Stats(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageAuthRequired, nil)
	}

	st, err := h.users.GetStats(c.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, response.MessageUserNotFound, err)
		}
		return err
	}

	return c.JSON(st)
}

func (h *UserHandler) DeleteAccount(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageAuthRequired, nil)
	}

	if err := h.users.DeleteAccount(c.Context(), userID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}
