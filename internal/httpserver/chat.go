package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MKuranov/ai_chat/internal/logging"
	"github.com/MKuranov/ai_chat/internal/middleware"
	"github.com/MKuranov/ai_chat/internal/service"
)

type ChatHTTP struct {
	Svc *service.ChatService
}

func (h *ChatHTTP) Protected(c echo.Context) error {
	username, _ := c.Get(middleware.ContextUsername).(string)
	return c.JSON(http.StatusOK, echo.Map{
		"message": "This is a protected route",
		"user":    username,
	})
}

type chatRequest struct {
	Text string `json:"text"`
}

// Chat returns 200 even when the provider fails: at this boundary a
// downstream failure is data, rendered as an "Error: ..." payload.
func (h *ChatHTTP) Chat(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "chat")

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("chat_rejected", "status", 422, "error", err)
		return detailJSON(c, http.StatusUnprocessableEntity, "invalid body")
	}

	reply, err := h.Svc.Relay(ctx, req.Text)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"response": fmt.Sprintf("Error: %v", err)})
	}
	return c.JSON(http.StatusOK, echo.Map{"response": reply})
}
