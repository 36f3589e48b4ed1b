package routes

import (
	"github.com/gofiber/fiber/v3"

	"learn-loop/internal/delivery/http/handler"
	"learn-loop/internal/delivery/http/middleware"
	"learn-loop/internal/ws"
)

type Registry struct {
	health      *handler.HealthHandler
	auth        *handler.AuthHandler
	users       *handler.UserHandler
	careers     *handler.CareerHandler
	submissions *handler.SubmissionHandler

	authMw *middleware.AuthMiddleware
	wsH    *ws.Handler
}

func NewRegistry(
	auth *handler.AuthHandler,
	users *handler.UserHandler,
	careers *handler.CareerHandler,
	submissions *handler.SubmissionHandler,
	authMw *middleware.AuthMiddleware,
	wsH *ws.Handler,
) *Registry {
	return &Registry{
		health:      handler.NewHealthHandler(),
		auth:        auth,
		users:       users,
		careers:     careers,
		submissions: submissions,
		authMw:      authMw,
		wsH:         wsH,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	api := app.Group("/api")
	r.health.RegisterRoutes(api)
	r.auth.RegisterRoutes(api)

	authed := api.Group("", r.authMw.Middleware())
	r.users.RegisterRoutes(authed)
	r.careers.RegisterRoutes(authed)
	r.submissions.RegisterRoutes(authed)

	admin := authed.Group("/admin", r.authMw.RequireAdmin())
	r.submissions.RegisterAdminRoutes(admin)

	if r.wsH != nil {
		app.Get("/ws/submissions", r.wsH.HandleSubmissionsWS)
	}
}
