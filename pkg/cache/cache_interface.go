package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheDisabled is returned by Ping on the no-op cache
var ErrCacheDisabled = errors.New("cache disabled")

// Cache is the contract of the lookup cache.
// Implementations: Redis (internal/infrastructure/cache) and Noop.
type Cache interface {
	// Get loads key into dest.
	// found = false on a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with ttl (0 = no expiry)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection
	Ping(ctx context.Context) error
}

// Noop is the cache used when Redis is disabled: every Get misses
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error { return nil }
func (Noop) Ping(context.Context) error { return ErrCacheDisabled }
