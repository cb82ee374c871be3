package persistence

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned when a key is absent.
var ErrKeyNotFound = errors.New("key not found")

// KV is the durable key-value surface the gateway stores client state in.
// Backed by Redis in deployments and by an in-memory map in tests.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetNX sets the key only if it does not exist. Reports whether the
	// key was claimed.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}
