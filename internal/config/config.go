package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgREST = "postgrest"
	StoreDriverPostgres  = "postgres"

	// Accepted bcrypt work factors (bcrypt.MinCost..bcrypt.MaxCost)
	minBcryptCost = 4
	maxBcryptCost = 31
)

var (
	ErrMissingStoreCredentials = errors.New("missing Supabase credentials: SUPABASE_URL and SUPABASE_KEY are required")
	ErrMissingDatabaseURL      = errors.New("SUPABASE_DB_URL is required when STORE_DRIVER=postgres")
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Redis  RedisConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port            string
	Env             string // dev or prod
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	TrustedOrigins  []string // CORS allowed origins
}

type StoreConfig struct {
	Driver      string // postgrest or postgres
	URL         string // Supabase project URL
	Key         string // Supabase API key
	DatabaseURL string // Postgres DSN, only used by the postgres driver
}

type RedisConfig struct {
	Addr     string // empty disables the profile cache
	Password string
	DB       int
	TTL      time.Duration
}

type AuthConfig struct {
	BcryptCost int
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3000"),
			Env:             getEnv("APP_ENV", "dev"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			TrustedOrigins:  getSliceEnv("TRUSTED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Store: StoreConfig{
			Driver:      strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgREST)),
			URL:         strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
			Key:         getEnv("SUPABASE_KEY", ""),
			DatabaseURL: getEnv("SUPABASE_DB_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			TTL:      getDurationEnv("PROFILE_CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			BcryptCost: getIntEnv("BCRYPT_COST", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the process cannot start without.
func (c *Config) Validate() error {
	if c.Store.URL == "" || c.Store.Key == "" {
		return ErrMissingStoreCredentials
	}

	switch c.Store.Driver {
	case StoreDriverPostgREST:
	case StoreDriverPostgres:
		if c.Store.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (want %q or %q)", c.Store.Driver, StoreDriverPostgREST, StoreDriverPostgres)
	}

	if c.Auth.BcryptCost < minBcryptCost || c.Auth.BcryptCost > maxBcryptCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", minBcryptCost, maxBcryptCost, c.Auth.BcryptCost)
	}

	return nil
}

// IsDevelopment returns true if the environment is set to dev
func (c *ServerConfig) IsDevelopment() bool {
	return c.Env == "dev"
}

// CacheEnabled reports whether a Redis address was configured
func (c *RedisConfig) CacheEnabled() bool {
	return c.Addr != ""
}

// MaskedKey returns the first characters of the API key for startup logs.
func (c *StoreConfig) MaskedKey() string {
	if len(c.Key) <= 20 {
		return strings.Repeat("*", len(c.Key))
	}
	return c.Key[:20] + "..."
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return time.Duration(seconds) * time.Second
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Split by comma and trim whitespace
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}
