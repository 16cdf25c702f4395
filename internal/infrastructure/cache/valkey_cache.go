package cache

import (
	"context"
	"fmt"
	"log"

	"github.com/valkey-io/valkey-go"
)

// ValkeyCache durable key-value cache backed by Valkey. Entries never expire.
type ValkeyCache struct {
	client valkey.Client
}

// NewValkeyCache connects to a single Valkey node
func NewValkeyCache(addr string) (*ValkeyCache, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
	})
	if err != nil {
		return nil, fmt.Errorf("valkey connect: %w", err)
	}
	log.Printf("✅ Valkey cache connected: %s", addr)
	return &ValkeyCache{client: client}, nil
}

// Get returns found=false when the key does not exist
func (c *ValkeyCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Do(ctx, c.client.B().Get().Key(key).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("valkey get %s: %w", key, err)
	}
	return value, true, nil
}

func (c *ValkeyCache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Do(ctx, c.client.B().Set().Key(key).Value(value).Build()).Error(); err != nil {
		return fmt.Errorf("valkey set %s: %w", key, err)
	}
	return nil
}

// Remove deleting a missing key is not an error
func (c *ValkeyCache) Remove(ctx context.Context, key string) error {
	if err := c.client.Do(ctx, c.client.B().Del().Key(key).Build()).Error(); err != nil {
		return fmt.Errorf("valkey del %s: %w", key, err)
	}
	return nil
}

// Close releases the client
func (c *ValkeyCache) Close() {
	c.client.Close()
}
