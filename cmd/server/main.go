package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/MKuranov/ai_chat/internal/config"
	"github.com/MKuranov/ai_chat/internal/gemini"
	"github.com/MKuranov/ai_chat/internal/httpserver"
	"github.com/MKuranov/ai_chat/internal/logging"
	"github.com/MKuranov/ai_chat/internal/middleware"
	"github.com/MKuranov/ai_chat/internal/mykafka"
	"github.com/MKuranov/ai_chat/internal/repo"
	"github.com/MKuranov/ai_chat/internal/service"
	"github.com/MKuranov/ai_chat/internal/tokens"
)

func main() {
	cfg := config.Load()
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	config.MustNonEmpty(cfg.GeminiAPIKey, "GEMINI_API_KEY")

	lgr := logging.New(cfg.LogLevel)
	slog.SetDefault(lgr)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	provider, err := gemini.NewClient(context.Background(), gemini.Config{
		APIKey:    cfg.GeminiAPIKey,
		ModelName: cfg.GeminiModel,
	})
	if err != nil {
		log.Fatalf("gemini init error: %v", err)
	}
	defer provider.Close()

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = mykafka.NewProducer(cfg.KafkaBrokers, "user_events")
		defer producer.Close()
	}

	tokenSvc := &tokens.Service{Secret: cfg.JWTSecret}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Use(middleware.RequestLogger(lgr))

	httpserver.Register(e, &httpserver.Deps{
		Auth: &httpserver.AuthHTTP{
			Svc: &service.AuthService{
				Repo:   repo.GormRepo{DB: db},
				Tokens: tokenSvc,
				Events: producer,
			},
		},
		Chat: &httpserver.ChatHTTP{
			Svc: &service.ChatService{Provider: provider},
		},
		Tokens: tokenSvc,
	})

	go func() {
		if err := e.Start(cfg.ServerAddress); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
