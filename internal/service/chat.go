package service

import (
	"context"

	"github.com/MKuranov/ai_chat/internal/logging"
)

// Provider is the external text-generation call: prompt in, text out.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ChatService struct {
	Provider Provider
}

// Relay forwards text to the provider verbatim, including the empty string.
// Success and failure stay distinguishable here; the HTTP boundary decides
// how a failure is rendered.
func (s *ChatService) Relay(ctx context.Context, text string) (string, error) {
	reply, err := s.Provider.Generate(ctx, text)
	if err != nil {
		logging.FromContext(ctx).Warn("provider_call_failed", "error", err)
		return "", err
	}
	return reply, nil
}
