// Package cache memoizes dashboard loads by query name and arguments.
// Entries never expire; Invalidate drops all of them.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Store holds encoded entries.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}

// Key builds a cache key from a query name and its arguments.
func Key(name string, args ...any) string {
	if len(args) == 0 {
		return name
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, ":")
}

// Cache wraps a Store with typed loads.
type Cache struct {
	store Store
}

// New creates a cache over store
func New(store Store) *Cache {
	return &Cache{store: store}
}

// Load returns the cached value for key, or runs load and stores its result.
// Store failures are logged and fall through to load; load errors are never cached.
func Load[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if raw, ok, err := c.store.Get(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	} else if ok {
		var v T
		err := json.Unmarshal(raw, &v)
		if err == nil {
			return v, nil
		}
		log.Warn().Err(err).Str("key", key).Msg("cache entry undecodable, reloading")
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache entry not encodable")
		return v, nil
	}
	if err := c.store.Set(ctx, key, raw); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return v, nil
}

// Invalidate drops every entry.
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("cache: failed to clear: %w", err)
	}
	log.Info().Msg("cache invalidated")
	return nil
}
