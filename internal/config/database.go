package config

import (
	"fmt"
	"strconv"
	"time"

	"blogging-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the MongoDB settings from environment variables
func LoadDatabaseConfig() (*database.MongoConfig, error) {
	maxPoolSize, err := strconv.ParseUint(getEnv("MONGO_MAX_POOL_SIZE", "100"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_MAX_POOL_SIZE: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("MONGO_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_MAX_RETRIES: %w", err)
	}

	retryDelay, err := time.ParseDuration(getEnv("MONGO_RETRY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_RETRY_DELAY: %w", err)
	}

	connectTimeout, err := time.ParseDuration(getEnv("MONGO_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_CONNECT_TIMEOUT: %w", err)
	}

	return &database.MongoConfig{
		URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database:       getEnv("MONGO_DATABASE", "blogging"),
		MaxPoolSize:    maxPoolSize,
		MaxRetries:     maxRetries,
		RetryDelay:     retryDelay,
		ConnectTimeout: connectTimeout,
	}, nil
}
