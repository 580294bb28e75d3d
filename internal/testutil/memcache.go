package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"blogging-backend/pkg/cache"
)

// MemoryCache is an in-process cache.Cache for tests. TTLs are ignored.
type MemoryCache struct {
	mu    sync.Mutex
	items map[string][]byte

	Gets int
	Sets int
}

var _ cache.Cache = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: map[string][]byte{}}
}

func (m *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++

	raw, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *MemoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sets++
	m.items[key] = raw
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}

func (m *MemoryCache) Ping(context.Context) error { return nil }

// Has reports whether key is cached
func (m *MemoryCache) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}
