package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress string

	DatabaseURL string
	SQLitePath  string

	JWTSecret []byte

	GeminiAPIKey string
	GeminiModel  string

	KafkaBrokers []string

	LogLevel string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return &Config{
		ServerAddress: envDefault("SERVER_ADDRESS", ":8000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  envDefault("SQLITE_PATH", "ai_chat.db"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envDefault("GEMINI_MODEL", "gemini-2.0-flash"),

		KafkaBrokers: csv(os.Getenv("KAFKA_BROKERS")),

		LogLevel: envDefault("LOG_LEVEL", "info"),
	}
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func csv(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
