// Package aggregator fans discovery queries out across event sources,
// falling through tiers until one yields candidates: real providers
// first, the synthesized discovery source last.
package aggregator

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/encore/internal/adapters/cache"
	"github.com/okian/encore/internal/adapters/geo"
	"github.com/okian/encore/internal/adapters/sources"
	"github.com/okian/encore/internal/domain/model"
	"github.com/okian/encore/pkg/logger"
	"github.com/okian/encore/pkg/metrics"
)

// Result notes, surfaced to API clients so a synthesized or partial
// answer is never mistaken for full provider coverage.
const (
	NoteNoSourceConfigured = "no_source_configured"
	NoteNoEventsFound      = "no_events_found"
	NoteAllSourcesFailed   = "all_sources_failed"
	NotePartialResults     = "partial_results"
)

// errAllSourcesFailed marks a transient total outage. It travels as an
// error so the empty result never enters the cache; the next identical
// request retries upstream instead of serving the failure for a full
// TTL.
var errAllSourcesFailed = errors.New("all sources failed")

// Request is one aggregation ask.
type Request struct {
	Location    *geo.Location
	RadiusMiles int
	// Genres are the root genres to fan out over; empty means a
	// single unfiltered query.
	Genres   []string
	DateFrom time.Time
	DateTo   time.Time
}

// Result is the deduplicated candidate set plus provenance.
type Result struct {
	Candidates []model.Candidate `json:"candidates"`
	// TotalScanned counts candidates before dedupe and scoring.
	TotalScanned int    `json:"total_scanned"`
	Tier         string `json:"tier"`
	Note         string `json:"note,omitempty"`
}

// Aggregator queries event sources tier by tier. Safe for concurrent
// use.
type Aggregator struct {
	tiers         []sources.EventSource
	cache         *cache.Cache[Result]
	maxPages      int
	maxCandidates int
	log           logger.Logger
}

// New creates an Aggregator over the given sources, tried in order.
func New(tiers []sources.EventSource, resultCache *cache.Cache[Result], opts ...Option) *Aggregator {
	a := &Aggregator{
		tiers:         tiers,
		cache:         resultCache,
		maxPages:      3,
		maxCandidates: 200,
		log:           logger.Named("aggregator"),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Fetch returns candidates for the request, served from cache when a
// fresh identical query exists. Concurrent identical misses share one
// upstream pass.
func (a *Aggregator) Fetch(ctx context.Context, req Request) (Result, error) {
	key := cache.Key(req.Location.Normalized, req.RadiusMiles, req.Genres)

	result, _, err := a.cache.GetOrFetch(ctx, key, func(ctx context.Context) (Result, error) {
		return a.fetch(ctx, req)
	})
	if errors.Is(err, errAllSourcesFailed) {
		return Result{Note: NoteAllSourcesFailed}, nil
	}
	return result, err
}

// fetch walks the tiers until one produces candidates.
func (a *Aggregator) fetch(ctx context.Context, req Request) (Result, error) {
	configured := 0
	realConfigured := 0
	for _, src := range a.tiers {
		if !src.Configured() {
			continue
		}
		configured++
		if src.Name() != sources.SourceDiscovery {
			realConfigured++
		}
	}
	if configured == 0 {
		return Result{Note: NoteNoSourceConfigured}, nil
	}

	sawFailure := false
	for _, src := range a.tiers {
		if !src.Configured() {
			continue
		}

		candidates, scanned, failed, anyOK := a.querySource(ctx, src, req)
		if failed {
			sawFailure = true
		}

		if len(candidates) > 0 {
			metrics.RecordTierServed(src.Name())
			metrics.RecordCandidatesScanned(scanned)

			note := ""
			switch {
			case src.Name() == sources.SourceDiscovery && realConfigured == 0:
				note = NoteNoSourceConfigured
			case src.Name() == sources.SourceDiscovery:
				note = NoteNoEventsFound
			case failed && anyOK:
				note = NotePartialResults
			}

			return Result{
				Candidates:   candidates,
				TotalScanned: scanned,
				Tier:         src.Name(),
				Note:         note,
			}, nil
		}
	}

	if sawFailure {
		return Result{}, errAllSourcesFailed
	}
	return Result{Note: NoteNoEventsFound}, nil
}

// querySource fans one source out across the request's genres and
// pages, deduplicating as results arrive. It reports whether any
// genre query failed and whether any succeeded.
func (a *Aggregator) querySource(ctx context.Context, src sources.EventSource, req Request) (candidates []model.Candidate, scanned int, failed, anyOK bool) {
	genres := req.Genres
	if len(genres) == 0 {
		genres = []string{""}
	}

	var mu sync.Mutex
	dedupe := newDeduper()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(genres))

	for _, genre := range genres {
		q := sources.Query{
			City:        req.Location.DisplayName,
			Lat:         req.Location.Lat,
			Lng:         req.Location.Lng,
			RadiusMiles: req.RadiusMiles,
			Genre:       genre,
			DateFrom:    req.DateFrom,
			DateTo:      req.DateTo,
		}

		g.Go(func() error {
			for page := 0; page < a.maxPages; page++ {
				result, err := src.Search(gctx, q, page)
				if err != nil {
					mu.Lock()
					failed = true
					mu.Unlock()
					a.log.Warn(gctx, "source query failed",
						logger.String("source", src.Name()),
						logger.String("genre", genre),
						logger.Int("page", page),
						logger.Error(err))
					return nil
				}

				mu.Lock()
				anyOK = true
				scanned += len(result.Events)
				for _, ev := range result.Events {
					if dedupe.seen(ev) {
						continue
					}
					candidates = append(candidates, ev)
				}
				full := len(candidates) >= a.maxCandidates
				mu.Unlock()

				if full || !result.HasMore {
					return nil
				}
			}
			return nil
		})
	}

	// Workers report failures via the shared flags, never as errors.
	_ = g.Wait()

	if len(candidates) > a.maxCandidates {
		candidates = candidates[:a.maxCandidates]
	}
	return candidates, scanned, failed, anyOK
}
