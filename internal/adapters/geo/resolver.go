// Package geo resolves free-text locations to coordinates, using a
// bundled US city gazetteer first and an external geocoder only for
// cities the gazetteer misses.
package geo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/okian/encore/pkg/logger"
	"github.com/okian/encore/pkg/metrics"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a resolved place.
type Location struct {
	Coordinates
	// DisplayName echoes the caller's input (or the geocoder's label)
	// for presentation.
	DisplayName string `json:"display_name"`
	// Normalized is the canonical lookup key, also used for cache keys.
	Normalized string `json:"normalized"`
}

// Geocoder resolves locations the gazetteer does not know.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Location, error)
}

// Resolver answers location lookups. Safe for concurrent use.
type Resolver struct {
	geocoder Geocoder
	log      logger.Logger

	mu       sync.RWMutex
	fallback map[string]Location // geocoder results, process-local

	// sorted gazetteer keys, for deterministic fuzzy matching
	keys []string
}

// NewResolver creates a Resolver. The geocoder is optional; without
// one, lookups outside the gazetteer fail with ErrLocationNotFound.
func NewResolver(opts ...ResolverOption) *Resolver {
	keys := make([]string, 0, len(usCities))
	for key := range usCities {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	r := &Resolver{
		fallback: make(map[string]Location),
		keys:     keys,
		log:      logger.Named("geo"),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve maps a raw location string to coordinates. Gazetteer hits
// never touch the network; geocoder results are remembered for the
// life of the process.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*Location, error) {
	normalized := Normalize(raw)
	if normalized == "" {
		return nil, ErrEmptyLocation
	}

	if loc, ok := r.lookup(raw, normalized); ok {
		metrics.RecordGazetteerHit()
		return loc, nil
	}

	r.mu.RLock()
	cached, ok := r.fallback[normalized]
	r.mu.RUnlock()
	if ok {
		return &cached, nil
	}

	if r.geocoder == nil {
		return nil, ErrLocationNotFound
	}

	metrics.RecordGeocodeFallback()
	loc, err := r.geocoder.Geocode(ctx, raw)
	if err != nil {
		metrics.RecordGeocodeFailure()
		r.log.Warn(ctx, "geocoder fallback failed",
			logger.String("location", raw),
			logger.Error(err))
		return nil, ErrLocationNotFound
	}
	loc.Normalized = normalized

	r.mu.Lock()
	r.fallback[normalized] = *loc
	r.mu.Unlock()

	return loc, nil
}

// lookup tries the gazetteer: exact match, then the city part before
// a comma, then a deterministic prefix/substring scan.
func (r *Resolver) lookup(raw, normalized string) (*Location, bool) {
	if coords, ok := usCities[normalized]; ok {
		return r.located(raw, normalized, coords), true
	}

	cityOnly := normalized
	if idx := strings.Index(normalized, ","); idx >= 0 {
		cityOnly = strings.TrimSpace(normalized[:idx])
	}
	if coords, ok := usCities[cityOnly]; ok {
		return r.located(raw, normalized, coords), true
	}
	if cityOnly == "" {
		return nil, false
	}

	// Fuzzy pass over sorted keys keeps results stable for inputs such
	// as "brookly" or "saratoga".
	for _, key := range r.keys {
		if strings.HasPrefix(key, cityOnly) || strings.Contains(key, cityOnly) {
			return r.located(raw, normalized, usCities[key]), true
		}
	}

	return nil, false
}

func (r *Resolver) located(raw, normalized string, coords Coordinates) *Location {
	return &Location{
		Coordinates: coords,
		DisplayName: strings.TrimSpace(raw),
		Normalized:  normalized,
	}
}

// Normalize lowers, trims and strips country suffixes from a location
// string. The result keys both gazetteer and discovery caches.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, suffix := range []string{", usa", ", us", ", united states"} {
		s = strings.ReplaceAll(s, suffix, "")
	}
	s = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), ","))
	return s
}
