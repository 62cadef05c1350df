package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/MKuranov/ai_chat/internal/logging"
	"github.com/MKuranov/ai_chat/internal/repo"
	"github.com/MKuranov/ai_chat/internal/service"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validateRegistration(req registerRequest) (string, bool) {
	switch {
	case len(req.Username) < 1 || len(req.Username) > 50:
		return "username must be 1-50 characters", false
	case len(req.Email) < 5 || len(req.Email) > 100 || !strings.Contains(req.Email, "@"):
		return "email must be a valid address of 5-100 characters", false
	case len(req.Password) < 6 || len(req.Password) > 100:
		return "password must be 6-100 characters", false
	}
	return "", true
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "register")

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_rejected", "status", 422, "error", err)
		return detailJSON(c, http.StatusUnprocessableEntity, "invalid body")
	}
	if msg, ok := validateRegistration(req); !ok {
		l.Warn("register_rejected", "status", 422, "reason", msg)
		return detailJSON(c, http.StatusUnprocessableEntity, msg)
	}

	err := h.Svc.Register(ctx, req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, repo.ErrUsernameTaken):
		return detailJSON(c, http.StatusBadRequest, "Username already registered")
	case errors.Is(err, repo.ErrEmailTaken):
		return detailJSON(c, http.StatusBadRequest, "Email already registered")
	case err != nil:
		return detailJSON(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User created successfully"})
}

// Login consumes the form-encoded body the token endpoint convention
// expects, not JSON.
func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()

	username := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.Svc.Login(ctx, username, password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return detailJSON(c, http.StatusUnauthorized, "Incorrect username or password")
	case err != nil:
		return detailJSON(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}
