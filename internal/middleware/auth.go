package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/MKuranov/ai_chat/internal/tokens"
)

// ContextUsername is the echo context key holding the verified subject.
const ContextUsername = "username"

type Auth struct {
	Tokens *tokens.Service
}

func NewAuth(ts *tokens.Service) *Auth {
	return &Auth{Tokens: ts}
}

// RequireAuth rejects the request unless a valid bearer token is presented.
// Missing header, wrong scheme, and every verification failure produce the
// same response, so the client learns nothing about why.
func (m *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return notAuthenticated(c)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return notAuthenticated(c)
		}

		claims, err := m.Tokens.Verify(parts[1])
		if err != nil {
			return notAuthenticated(c)
		}

		c.Set(ContextUsername, claims.Subject)
		return next(c)
	}
}

func notAuthenticated(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Not authenticated"})
}
