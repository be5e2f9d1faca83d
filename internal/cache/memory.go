package cache

import (
	"context"
	"sync"
)

// memoryCache is a process-local Cache used in tests and as a fallback when
// Redis is not configured. Entries are recomputable, so losing them on
// restart is acceptable.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory creates an in-memory cache
func NewMemory() Cache {
	return &memoryCache{entries: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}
