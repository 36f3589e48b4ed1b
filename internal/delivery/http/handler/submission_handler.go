package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"learn-loop/internal/delivery/http/middleware"
	"learn-loop/internal/delivery/http/response"
	"learn-loop/internal/domain/user"
	ucsubmission "learn-loop/internal/usecase/submission"
)

type SubmissionHandler struct {
	submissions *ucsubmission.Service
}

type submitProjectRequest struct {
	Skill string `json:"skill"`
	Link  string `json:"link"`
	Notes string `json:"notes"`
}

func NewSubmissionHandler(submissions *ucsubmission.Service) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

func (h *SubmissionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/submit-project", h.Submit)
	r.Get("/submission-status/:skill", h.Status)
}

// RegisterAdminRoutes attaches the role-gated listing.
func (h *SubmissionHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/submissions", h.ListAll)
}

func (h *SubmissionHandler) Submit(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageAuthRequired, nil)
	}

	var req submitProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill", err)
	}

	id, err := h.submissions.Submit(c.Context(), userID, req.Skill, req.Link, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ucsubmission.ErrUnknownSkill):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill", err)
		case errors.Is(err, ucsubmission.ErrMissingLink):
			return middleware.NewAppError(fiber.StatusBadRequest, "Project link is required", err)
		default:
			return err
		}
	}

	return c.JSON(fiber.Map{
		"message":      "Project submitted for validation",
		"submissionId": id,
	})
}

func (h *SubmissionHandler) Status(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageAuthRequired, nil)
	}

	submitted, err := h.submissions.StatusFor(c.Context(), userID, c.Params("skill"))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, response.MessageUserNotFound, err)
		}
		return err
	}

	return c.JSON(fiber.Map{"submitted": submitted})
}

func (h *SubmissionHandler) ListAll(c fiber.Ctx) error {
	subs, err := h.submissions.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"submissions": subs})
}
