package middleware

import (
	"context"
	"strings"

	"jobmatch/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

const CtxUserKey = "auth_user"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (user.User, error)
}

type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Required rejects requests without a valid bearer token.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		usr, err := m.auth.Authenticate(c.Context(), token)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		}

		c.Locals(CtxUserKey, usr)
		return c.Next()
	}
}

// Optional attaches the user when a valid token is present and otherwise
// lets the request through anonymously.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		if token, ok := bearerTokenFromHeader(c.Get("Authorization")); ok {
			if usr, err := m.auth.Authenticate(c.Context(), token); err == nil {
				c.Locals(CtxUserKey, usr)
			}
		}
		return c.Next()
	}
}

func CurrentUser(c fiber.Ctx) (user.User, bool) {
	usr, ok := c.Locals(CtxUserKey).(user.User)
	return usr, ok
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
