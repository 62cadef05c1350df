package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MKuranov/ai_chat/internal/middleware"
	"github.com/MKuranov/ai_chat/internal/tokens"
)

type Deps struct {
	Auth   *AuthHTTP
	Chat   *ChatHTTP
	Tokens *tokens.Service
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/register", d.Auth.Register)
	e.POST("/login", d.Auth.Login)

	authMw := middleware.NewAuth(d.Tokens)

	private := e.Group("")
	private.Use(authMw.RequireAuth)

	private.GET("/protected", d.Chat.Protected)
	private.POST("/chat", d.Chat.Chat)
}

// detailJSON writes the {"detail": ...} error body every failure response
// in the API uses.
func detailJSON(c echo.Context, code int, detail string) error {
	return c.JSON(code, echo.Map{"detail": detail})
}
