package cache

import (
	"context"
	"sync"
)

// MemoryCache process-local cache used when no Valkey address is configured
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *MemoryCache) Remove(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Len number of stored entries
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
