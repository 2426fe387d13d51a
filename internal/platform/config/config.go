package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	TokenSecret string
	TokenIssuer string
	TokenTTL    time.Duration

	PublishSweepInterval time.Duration
}

func Load() (Config, error) {
	// Local development reads a .env file; absence is fine.
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "inkwell"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	issuer := os.Getenv("TOKEN_ISSUER")
	if issuer == "" {
		issuer = "inkwell-api"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		TokenSecret: os.Getenv("TOKEN_SECRET"),
		TokenIssuer: issuer,
		TokenTTL:    time.Duration(envInt64("TOKEN_TTL_SECONDS", 1800)) * time.Second,

		PublishSweepInterval: time.Duration(envInt64("PUBLISH_SWEEP_SECONDS", 30)) * time.Second,
	}, nil
}

func envInt64(name string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}
