package service

import (
	"context"
	"errors"

	"github.com/MKuranov/ai_chat/internal/hash"
	"github.com/MKuranov/ai_chat/internal/logging"
	"github.com/MKuranov/ai_chat/internal/mykafka"
	"github.com/MKuranov/ai_chat/internal/repo"
	"github.com/MKuranov/ai_chat/internal/tokens"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password; the two must stay indistinguishable to the client.
var ErrInvalidCredentials = errors.New("incorrect username or password")

type AuthService struct {
	Repo   repo.GormRepo
	Tokens *tokens.Service
	Events *mykafka.Producer // optional, nil when no brokers configured
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "reason", "cannot hash the password", "error", err)
		return err
	}

	if _, err := s.Repo.CreateUser(ctx, username, email, pwHash); err != nil {
		if errors.Is(err, repo.ErrUsernameTaken) || errors.Is(err, repo.ErrEmailTaken) {
			l.Warn("register_conflict", "username", username, "error", err)
		} else {
			l.Error("register_failed", "error", err)
		}
		return err
	}

	l.Info("user_registered", "username", username)
	s.publish(ctx, "user_registered", username)
	return nil
}

// Login verifies the password and mints a bearer token. A corrupt stored
// hash is deliberately not folded into ErrInvalidCredentials: it propagates
// as a hard error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			l.Warn("login_failed", "username", username)
			return "", ErrInvalidCredentials
		}
		l.Error("login_failed", "error", err)
		return "", err
	}

	ok, err := hash.CheckPassword(password, user.PasswordHash)
	if err != nil {
		l.Error("login_failed", "username", username, "reason", "stored hash unreadable", "error", err)
		return "", err
	}
	if !ok {
		l.Warn("login_failed", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.Username, user.Email, tokens.DefaultTTL)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign token", "error", err)
		return "", err
	}

	l.Info("user_logged_in", "username", username)
	s.publish(ctx, "user_logged_in", username)
	return token, nil
}

func (s *AuthService) publish(ctx context.Context, eventType, username string) {
	if s.Events == nil {
		return
	}
	event := map[string]any{
		"type":     eventType,
		"username": username,
	}
	if err := s.Events.PublishEvent(ctx, username, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "type", eventType, "error", err)
	}
}
