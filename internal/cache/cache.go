package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Cache is a JSON-backed Redis cache bound to a value type T. Each entry
// expires after the configured TTL (pass 0 for keys that should not expire).
type Cache[T any] struct {
	client *goredis.Client
	ttl    time.Duration
}

func New[T any](client *goredis.Client, ttl time.Duration) *Cache[T] {
	return &Cache[T]{client: client, ttl: ttl}
}

// Get retrieves and unmarshals a value. Returns (nil, false) on any miss
// or deserialisation error; a corrupt entry is treated as a miss.
func (c *Cache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, false
	}
	return &v, true
}

// Set marshals value and stores it under key. Errors are logged rather
// than returned — a lost cache write is non-fatal.
func (c *Cache[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache: marshal error for key %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("cache: write error for key %s: %v", key, err)
	}
}
