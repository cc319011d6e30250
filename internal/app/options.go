package app

import (
	"time"

	"github.com/okian/encore/internal/adapters/geo"
	"github.com/okian/encore/internal/adapters/repository"
	"github.com/okian/encore/internal/adapters/sources"
	"github.com/okian/encore/internal/domain/profile"
	"github.com/okian/encore/pkg/logger"
)

// Option configures a Service before wiring.
type Option func(*Service)

// WithLogger overrides the service logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithHistorySource overrides where listening histories come from.
func WithHistorySource(history profile.HistorySource) Option {
	return func(s *Service) {
		s.history = history
	}
}

// WithTagLookup overrides the artist tag lookup.
func WithTagLookup(tags profile.TagLookup) Option {
	return func(s *Service) {
		s.tags = tags
	}
}

// WithNarrator overrides the profile narrator.
func WithNarrator(narrator profile.Narrator) Option {
	return func(s *Service) {
		s.narrator = narrator
	}
}

// WithResolver overrides the location resolver.
func WithResolver(resolver *geo.Resolver) Option {
	return func(s *Service) {
		s.resolver = resolver
	}
}

// WithEventSources overrides the source tiers, in fallback order.
func WithEventSources(tiers ...sources.EventSource) Option {
	return func(s *Service) {
		s.tiers = tiers
	}
}

// WithStore overrides the backing store.
func WithStore(store *repository.MemStore) Option {
	return func(s *Service) {
		s.store = store
	}
}
