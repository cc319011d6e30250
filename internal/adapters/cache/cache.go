// Package cache provides a TTL cache with single-flight fetching:
// concurrent misses on the same key share one upstream fetch.
package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/okian/encore/pkg/metrics"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a process-local TTL cache. Safe for concurrent use.
type Cache[V any] struct {
	ttl        time.Duration
	maxEntries int
	clock      func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[V]

	flight singleflight.Group
}

// New creates a cache. Entries live for ttl; zero ttl means entries
// never expire.
func New[V any](ttl time.Duration, opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		ttl:        ttl,
		maxEntries: 512,
		clock:      time.Now,
		entries:    make(map[string]entry[V]),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the cached value for key if present and fresh.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.expired(e) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// GetOrFetch returns the cached value for key, or runs fetch exactly
// once across concurrent callers and caches its result. The boolean
// reports whether the value came from cache.
func (c *Cache[V]) GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (V, error)) (V, bool, error) {
	if v, ok := c.Get(key); ok {
		metrics.RecordCacheHit()
		return v, true, nil
	}
	metrics.RecordCacheMiss()

	v, err, shared := c.flight.Do(key, func() (any, error) {
		// A racing caller may have populated the key while we waited
		// for the flight slot.
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	if shared {
		metrics.RecordCacheCoalesced()
	}

	return v.(V), false, nil
}

// Set stores value under key, pruning expired entries and evicting the
// soonest-to-expire entry when full.
func (c *Cache[V]) Set(key string, value V) {
	now := c.clock()

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && !e.expiresAt.After(now) {
			delete(c.entries, k)
		}
	}

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		var victim string
		var soonest time.Time
		for k, e := range c.entries {
			if victim == "" || e.expiresAt.Before(soonest) {
				victim, soonest = k, e.expiresAt
			}
		}
		delete(c.entries, victim)
	}

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = now.Add(c.ttl)
	}
	c.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	metrics.UpdateCacheEntries(len(c.entries))
}

// Delete removes key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	metrics.UpdateCacheEntries(len(c.entries))
	c.mu.Unlock()
}

// Len reports the number of stored entries, including ones past their
// TTL that have not been pruned yet.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[V]) expired(e entry[V]) bool {
	return !e.expiresAt.IsZero() && !e.expiresAt.After(c.clock())
}

// Key builds a deterministic cache key from a normalized location,
// radius and genre set. Genre order does not matter.
func Key(location string, radiusMiles int, genres []string) string {
	sorted := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.ToLower(strings.TrimSpace(g))
		if g != "" {
			sorted = append(sorted, g)
		}
	}
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString(location)
	b.WriteByte('|')
	b.WriteString(strings.Join(sorted, ","))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(radiusMiles))
	return b.String()
}
