package cache

import "time"

// Option configures a Cache.
type Option[V any] func(*Cache[V])

// WithMaxEntries caps the cache size.
func WithMaxEntries[V any](n int) Option[V] {
	return func(c *Cache[V]) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock[V any](clock func() time.Time) Option[V] {
	return func(c *Cache[V]) {
		if clock != nil {
			c.clock = clock
		}
	}
}
