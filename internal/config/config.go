package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultJWTSecret is only acceptable outside production
const DefaultJWTSecret = "change-me-in-production"

// Config holds the whole application configuration,
// populated from environment variables
type Config struct {
	App   AppConfig
	Redis RedisConfig
	JWT   JWTConfig
	Auth  AuthConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type RedisConfig struct {
	Enabled        bool
	Host           string
	Password       string
	DB             int
	KeyPrefix      string
	AuthorCacheTTL time.Duration
}

// JWTConfig carries the token signing secret.
// Previous secrets stay valid for verification during a rotation window.
type JWTConfig struct {
	Secret          string
	PreviousSecrets []string
	TokenTTL        time.Duration // 0 = tokens never expire
}

var portPattern = regexp.MustCompile(`^[0-9]{1,5}$`)

type AuthConfig struct {
	BcryptCost int
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Blogging API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "3000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Redis: RedisConfig{
			Enabled:        getEnvBool("REDIS_ENABLED", false),
			Host:           getEnv("REDIS_HOST", "localhost:6379"),
			Password:       getEnv("REDIS_PASSWORD", ""),
			DB:             getEnvInt("REDIS_DB", 0),
			KeyPrefix:      getEnv("REDIS_KEY_PREFIX", "blogging:"),
			AuthorCacheTTL: getEnvDuration("AUTHOR_CACHE_TTL", time.Hour),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", DefaultJWTSecret),
			PreviousSecrets: getEnvList("JWT_PREVIOUS_SECRETS"),
			TokenTTL:        getEnvDuration("JWT_TOKEN_TTL", 0),
		},
		Auth: AuthConfig{
			BcryptCost: getEnvInt("BCRYPT_COST", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the critical settings
func (c *Config) Validate() error {
	err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Environment, validation.Required, validation.In("development", "staging", "production", "test")),
		validation.Field(&c.App.Port, validation.Required, validation.Match(portPattern)),
	)
	if err != nil {
		return err
	}

	err = validation.ValidateStruct(&c.JWT,
		validation.Field(&c.JWT.Secret, validation.Required),
		validation.Field(&c.JWT.TokenTTL, validation.Min(time.Duration(0))),
	)
	if err != nil {
		return err
	}

	if c.App.Environment == "production" && c.JWT.Secret == DefaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}

	if c.Redis.Enabled && c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST must be set when REDIS_ENABLED is true")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
