package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "3000"
	defaultDeepSeekURL    = "https://api.deepseek.com/v1"
	defaultStaticDir      = "."
	defaultLogLevel       = "info"
	defaultAllowedOrigins = "*"
)

var ErrMissingAPIKey = errors.New("DEEPSEEK_API_KEY must be set")

// Config is built once at startup and shared read-only afterwards.
type Config struct {
	APIKey         string
	BaseURL        string
	Port           string
	StaticDir      string
	LogLevel       string
	AllowedOrigins []string
}

// Load reads an optional .env file from the working directory and then the
// process environment. Values already present in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Config{
		APIKey:         apiKey,
		BaseURL:        getEnv("DEEPSEEK_BASE_URL", defaultDeepSeekURL),
		Port:           getEnv("PORT", defaultPort),
		StaticDir:      getEnv("STATIC_DIR", defaultStaticDir),
		LogLevel:       getEnv("LOG_LEVEL", defaultLogLevel),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)),
	}, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
