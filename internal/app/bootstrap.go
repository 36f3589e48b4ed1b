package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"learn-loop/internal/config"
	"learn-loop/internal/delivery/http/handler"
	"learn-loop/internal/delivery/http/middleware"
	"learn-loop/internal/delivery/http/routes"
	"learn-loop/internal/pkg/jwt"
	ucauth "learn-loop/internal/usecase/auth"
	"learn-loop/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap wires the full service and returns it with a cleanup func.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	f := newFiber(c)
	return &App{Fiber: f, Container: c}, c.Close, nil
}

func newFiber(c *Container) *fiber.App {
	f := fiber.New(fiber.Config{
		ReadTimeout: 30 * time.Second,
		AppName:     c.Config.App.AppName,
	})

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	tokens := jwt.NewHMACService(c.Config.JWT.Secret, c.Config.JWT.ExpiresIn)
	authSvc := ucauth.NewService(c.Users, tokens, c.Config.JWT.AdminUsers)
	authMw := middleware.NewAuthMiddleware(tokens)

	registry := routes.NewRegistry(
		handler.NewAuthHandler(authSvc),
		handler.NewUserHandler(c.UserSvc),
		handler.NewCareerHandler(c.CareerSvc),
		handler.NewSubmissionHandler(c.Submissions),
		authMw,
		ws.NewHandler(c.Hub, c.Logger),
	)
	registry.Register(f)

	return f
}

// ListenAddr normalizes the configured port into a listen address.
func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
