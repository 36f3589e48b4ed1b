package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"learn-loop/internal/delivery/http/response"
	"learn-loop/internal/pkg/jwt"
)

const (
	CtxUserIDKey = "user_id"
	CtxRoleKey   = "role"
)

type AuthMiddleware struct {
	tokens jwt.Service
}

func NewAuthMiddleware(tokens jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Middleware authenticates the bearer token. A missing token is 401; a token
// that fails verification (bad signature, expired) is 403.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, response.MessageAuthRequired, nil)
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			return NewAppError(fiber.StatusForbidden, response.MessageInvalidToken, err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxRoleKey, claims.Role)

		return c.Next()
	}
}

// RequireAdmin gates a route behind the admin role claim. Must run after
// Middleware.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals(CtxRoleKey).(string)
		if role != jwt.RoleAdmin {
			return NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil)
		}
		return c.Next()
	}
}

// UserIDFromCtx pulls the authenticated user identifier set by Middleware.
func UserIDFromCtx(c fiber.Ctx) (string, bool) {
	id, ok := c.Locals(CtxUserIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
