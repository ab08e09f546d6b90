package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	JWTSecret string
	LogLevel  string
}

// Load reads settings from a .env file when present, falling back to the
// process environment.
func Load() Config {
	// No .env file is fine; deployments set real environment variables.
	_ = godotenv.Load()

	cfg := Config{
		Addr:      strings.TrimSpace(os.Getenv("ADDR")),
		JWTSecret: strings.TrimSpace(os.Getenv("DOCSTORE_JWT_SECRET")),
		LogLevel:  strings.TrimSpace(os.Getenv("LOG_LEVEL")),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg
}
