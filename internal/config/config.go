package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// PlaceholderSentinel marks an API base URL that was never filled in.
// A base URL containing it selects the in-memory fallback backend.
const PlaceholderSentinel = "your-mock-server-url"

type Config struct {
	Env      string
	LogLevel string

	// Client side.
	APIBaseURL  string
	SessionFile string

	// Server side.
	Addr           string
	StorageBackend string
	PostgresDSN    string
	JWTSecret      string
	TokenTTLHours  int
	AuthServiceURL string
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads configuration once per process, pulling in .env if present.
func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = FromEnv()
		if err := cfg.Validate(); err != nil {
			panic("invalid config: " + err.Error())
		}
	})
	return cfg
}

// FromEnv builds a Config from the current environment without caching.
func FromEnv() *Config {
	ttl, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "72"))
	if err != nil || ttl <= 0 {
		ttl = 72
	}
	return &Config{
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		APIBaseURL:     getEnv("API_BASE_URL", ""),
		SessionFile:    getEnv("SESSION_FILE", "data/session.json"),
		Addr:           getEnv("ADDR", ":8088"),
		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
		PostgresDSN:    getEnv("POSTGRES_DSN", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTLHours:  ttl,
		AuthServiceURL: getEnv("AUTH_SERVICE_URL", ""),
	}
}

func (c *Config) Validate() error {
	if c.StorageBackend != "memory" && c.StorageBackend != "postgres" {
		return errors.New("STORAGE_BACKEND must be one of: memory, postgres")
	}
	if c.StorageBackend == "postgres" && c.PostgresDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.AuthServiceURL == "" && c.JWTSecret == "" {
		return errors.New("JWT_SECRET or AUTH_SERVICE_URL is required outside development")
	}
	return nil
}

// RemoteConfigured reports whether a usable remote API base URL is set.
// The placeholder sentinel counts as unconfigured.
func (c *Config) RemoteConfigured() bool {
	return c.APIBaseURL != "" && !strings.Contains(c.APIBaseURL, PlaceholderSentinel)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
