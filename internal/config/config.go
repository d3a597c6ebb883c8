package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Server holds backend configuration loaded from the environment.
type Server struct {
	HTTPAddr  string
	DBDSN     string
	LogLevel  string
	LogFormat string
}

// Gateway holds gateway configuration loaded from the environment.
type Gateway struct {
	HTTPAddr  string
	ServerURL string
	LogLevel  string
	LogFormat string
}

// LoadServer reads backend settings from .env (optional) and env vars.
func LoadServer() (*Server, error) {
	loadDotenv()

	cfg := &Server{
		HTTPAddr:  getEnv("SERVER_HTTP_ADDR", ":9090"),
		DBDSN:     os.Getenv("DB_DSN"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}
	return cfg, nil
}

// LoadGateway reads gateway settings from .env (optional) and env vars.
func LoadGateway() (*Gateway, error) {
	loadDotenv()

	return &Gateway{
		HTTPAddr:  getEnv("GATEWAY_HTTP_ADDR", ":8080"),
		ServerURL: getEnv("SHAREIT_SERVER_URL", "http://localhost:9090"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}, nil
}

func loadDotenv() {
	// Missing .env is fine, env vars still apply.
	_ = godotenv.Load()
}

// getEnv returns the env var value or the default when unset.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
