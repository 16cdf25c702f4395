package repository

import "context"

// KeyValueCache durable local key-value surface used for map boundaries.
// Get returns found=false with a nil error when the key is absent.
type KeyValueCache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
