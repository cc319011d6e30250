package profile

import (
	"time"

	"github.com/okian/encore/pkg/logger"
)

// Option configures a Builder.
type Option func(*Builder)

// WithTagLookup enables tag enrichment for artists whose history
// entries carry no genres.
func WithTagLookup(tags TagLookup) Option {
	return func(b *Builder) {
		b.tags = tags
	}
}

// WithNarrator enables narrative generation.
func WithNarrator(n Narrator) Option {
	return func(b *Builder) {
		b.narrator = n
	}
}

// WithTopArtists caps how many history entries feed a profile.
func WithTopArtists(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.topArtists = n
		}
	}
}

// WithConcurrency caps parallel tag lookups.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(clock func() time.Time) Option {
	return func(b *Builder) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// WithLogger overrides the package logger.
func WithLogger(log logger.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}
