// Package cache is the process-wide read-through cache for lookup data.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const keyPrefix = "controls:cache:"

// Backend is a shared second-level store. *database.Redis satisfies it.
type Backend interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache keeps values in memory and, when a backend is configured, in Redis
type Cache struct {
	mu      sync.RWMutex
	local   map[string]entry
	backend Backend
	ttl     time.Duration
	group   singleflight.Group
	tracer  trace.Tracer
	now     func() time.Time
}

// New creates a cache. backend may be nil for a purely local cache.
func New(backend Backend, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{
		local:   make(map[string]entry),
		backend: backend,
		ttl:     ttl,
		tracer:  otel.Tracer("go-controls/cache"),
		now:     time.Now,
	}
}

// GetOrLoad returns the cached value for key or calls load and caches its result.
// Concurrent misses for the same key share one load. Load errors are not cached.
func GetOrLoad[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if value, ok := lookupLocal[T](c, key); ok {
		return value, nil
	}

	ctx, span := c.tracer.Start(ctx, "cache.load", trace.WithAttributes(attribute.String("cache.key", key)))
	defer span.End()

	result, err, _ := c.group.Do(key, func() (any, error) {
		if value, ok := lookupLocal[T](c, key); ok {
			return value, nil
		}

		if c.backend != nil {
			var value T
			err := c.backend.GetJSON(ctx, keyPrefix+key, &value)
			if err == nil {
				span.SetAttributes(attribute.String("cache.tier", "redis"))
				c.storeLocal(key, value)
				return value, nil
			}
			if !errors.Is(err, redis.Nil) {
				slog.WarnContext(ctx, "Cache backend read failed, falling back to loader", "key", key, "error", err)
			}
		}

		span.SetAttributes(attribute.String("cache.tier", "loader"))
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.storeLocal(key, value)
		if c.backend != nil {
			if err := c.backend.SetJSON(ctx, keyPrefix+key, value, c.ttl); err != nil {
				slog.WarnContext(ctx, "Cache backend write failed", "key", key, "error", err)
			}
		}
		return value, nil
	})
	if err != nil {
		span.RecordError(err)
		var zero T
		return zero, err
	}

	value, ok := result.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache entry %q has unexpected type %T", key, result)
	}
	return value, nil
}

func lookupLocal[T any](c *Cache, key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.local[key]
	c.mu.RUnlock()

	var zero T
	if !ok || c.now().After(e.expiresAt) {
		return zero, false
	}
	value, ok := e.value.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

func (c *Cache) storeLocal(key string, value any) {
	c.mu.Lock()
	c.local[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Invalidate drops keys from both tiers
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	c.mu.Lock()
	for _, key := range keys {
		delete(c.local, key)
	}
	c.mu.Unlock()

	if c.backend == nil {
		return
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = keyPrefix + key
	}
	if err := c.backend.Delete(ctx, prefixed...); err != nil {
		slog.WarnContext(ctx, "Cache backend delete failed", "keys", keys, "error", err)
	}
}

// InvalidatePrefix drops every local key starting with prefix. Redis copies
// expire on their own TTL.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.local {
		if strings.HasPrefix(key, prefix) {
			delete(c.local, key)
		}
	}
}

// Purge empties the local tier and drops expired entries
func (c *Cache) Purge() {
	c.mu.Lock()
	c.local = make(map[string]entry)
	c.mu.Unlock()
}

// Len reports the number of local entries, expired ones included
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.local)
}

// Key joins parts into a cache key, e.g. Key("definedvalues", guid)
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
