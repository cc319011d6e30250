// Package app wires the domain and adapters into the concert
// discovery service the HTTP layer talks to.
package app

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/encore/internal/adapters/cache"
	"github.com/okian/encore/internal/adapters/geo"
	"github.com/okian/encore/internal/adapters/repository"
	"github.com/okian/encore/internal/adapters/sources"
	"github.com/okian/encore/internal/aggregator"
	"github.com/okian/encore/internal/config"
	"github.com/okian/encore/internal/domain/genre"
	"github.com/okian/encore/internal/domain/matching"
	"github.com/okian/encore/internal/domain/model"
	"github.com/okian/encore/internal/domain/profile"
	"github.com/okian/encore/pkg/logger"
	"github.com/okian/encore/pkg/metrics"
)

// Service is the application core. Construct with New, then serve it
// over HTTP.
type Service struct {
	cfg      *config.Config
	log      logger.Logger
	clock    func() time.Time
	taxonomy *genre.Taxonomy

	builder    *profile.Builder
	resolver   *geo.Resolver
	aggregator *aggregator.Aggregator
	engine     *matching.Engine
	store      *repository.MemStore

	// test seams; production wiring fills these from config
	history  profile.HistorySource
	tags     profile.TagLookup
	narrator profile.Narrator
	tiers    []sources.EventSource
	started  time.Time
}

// New assembles the service from configuration. Options override
// individual collaborators, which tests use to avoid the network.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = config.New()
	}

	s := &Service{
		cfg:      cfg,
		log:      logger.Named("app"),
		clock:    time.Now,
		taxonomy: genre.New(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.wire()
	return s, nil
}

// wire builds everything not injected through options.
func (s *Service) wire() {
	cfg := s.cfg
	sourceTimeout := time.Duration(cfg.SourceTimeoutMS) * time.Millisecond

	musicbrainz := sources.NewMusicBrainzClient(cfg.MusicBrainzBaseURL, sourceTimeout, cfg.SourceRetries)
	spotify := sources.NewSpotifyClient(cfg.SpotifyAccessToken, cfg.SpotifyBaseURL, sourceTimeout, cfg.SourceRetries)

	if s.history == nil {
		s.history = spotify
	}
	if s.tags == nil {
		s.tags = musicbrainz
	}
	if s.narrator == nil {
		narrator := sources.NewNarratorClient(cfg.NarratorBaseURL, cfg.NarratorAPIKey, sourceTimeout)
		if narrator.Configured() {
			s.narrator = narrator
		}
	}

	builderOpts := []profile.Option{
		profile.WithTagLookup(s.tags),
		profile.WithTopArtists(cfg.TopArtistCount),
		profile.WithConcurrency(cfg.EnrichConcurrency),
		profile.WithClock(s.clock),
	}
	if s.narrator != nil {
		builderOpts = append(builderOpts, profile.WithNarrator(s.narrator))
	}
	s.builder = profile.New(s.history, s.taxonomy, builderOpts...)

	if s.resolver == nil {
		s.resolver = geo.NewResolver(
			geo.WithGeocoder(geo.NewNominatimClient(cfg.GeocoderBaseURL)))
	}

	if s.tiers == nil {
		discoveryOpts := []sources.DiscoveryOption{sources.WithDiscoveryClock(s.clock)}
		if spotify.Configured() {
			discoveryOpts = append(discoveryOpts, sources.WithPopularityLookup(spotify))
		}
		s.tiers = []sources.EventSource{
			sources.NewJambaseClient(cfg.JambaseAPIKey, cfg.JambaseBaseURL, sourceTimeout, cfg.SourceRetries),
			sources.NewTicketmasterClient(cfg.TicketmasterAPIKey, cfg.TicketmasterBaseURL, sourceTimeout, cfg.SourceRetries),
			sources.NewDiscoverySource(musicbrainz, discoveryOpts...),
		}
	}

	resultCache := cache.New[aggregator.Result](
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
		cache.WithClock[aggregator.Result](s.clock))
	s.aggregator = aggregator.New(s.tiers, resultCache,
		aggregator.WithMaxPages(cfg.MaxPagesPerQuery),
		aggregator.WithMaxCandidates(cfg.MaxCandidates))

	s.engine = matching.New(s.taxonomy,
		matching.WithMaxResults(cfg.MaxResults),
		matching.WithIndieBoost(cfg.IndieThreshold, int(cfg.IndieBoost)),
		matching.WithMainstreamPenalty(cfg.MainstreamThreshold, int(cfg.MainstreamPenalty)),
		matching.WithUnknownPopularityBoost(int(cfg.UnknownPopularityBoost)),
		matching.WithIndieOnly(cfg.IndieOnly))

	if s.store == nil {
		s.store = repository.NewMemStore(
			repository.WithShareTTL(time.Duration(cfg.ShareTTLSeconds)*time.Second),
			repository.WithClock(s.clock))
	}
}

// Start marks the service live. Collaborators are connectionless, so
// there is nothing to dial.
func (s *Service) Start(ctx context.Context) error {
	s.started = s.clock()
	s.log.Info(ctx, "service started",
		logger.String("addr", s.cfg.Addr),
		logger.Bool("jambase", s.cfg.JambaseAPIKey != ""),
		logger.Bool("ticketmaster", s.cfg.TicketmasterAPIKey != ""))
	return nil
}

// Stop releases resources. Present for symmetry with Start.
func (s *Service) Stop() {
	s.log.Info(context.Background(), "service stopped")
}

// BuildProfile rebuilds and stores the user's taste profile.
func (s *Service) BuildProfile(ctx context.Context, userID string) (*model.TasteProfile, error) {
	prof, err := s.builder.Build(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Profiles.Replace(ctx, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// Profile returns the stored profile for a user.
func (s *Service) Profile(ctx context.Context, userID string) (*model.TasteProfile, error) {
	prof, err := s.store.Profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileMissing
	}
	return prof, err
}

// DiscoverRequest is one discovery ask.
type DiscoverRequest struct {
	UserID      string
	City        string
	RadiusMiles int
	DateFrom    time.Time
	DateTo      time.Time
}

// DiscoverResponse carries ranked concerts plus provenance.
type DiscoverResponse struct {
	Concerts     []model.ScoredConcert `json:"concerts"`
	TotalScanned int                   `json:"total_scanned"`
	Tier         string                `json:"tier,omitempty"`
	Note         string                `json:"note,omitempty"`
	Location     *geo.Location         `json:"location"`
}

// Discover resolves the location, fans out to event sources over the
// user's top genres and returns ranked concerts.
func (s *Service) Discover(ctx context.Context, req DiscoverRequest) (*DiscoverResponse, error) {
	started := s.clock()
	metrics.RecordDiscoveryRequest()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.DiscoveryTimeoutMS)*time.Millisecond)
	defer cancel()

	location, err := s.resolver.Resolve(ctx, req.City)
	if err != nil {
		metrics.RecordErrorByComponent("geo", "resolve_failed")
		return nil, err
	}

	prof, err := s.Profile(ctx, req.UserID)
	if err != nil {
		metrics.RecordErrorByComponent("profile", "load_failed")
		return nil, err
	}

	radius := req.RadiusMiles
	if radius <= 0 {
		radius = 25
	}

	result, err := s.aggregator.Fetch(ctx, aggregator.Request{
		Location:    location,
		RadiusMiles: radius,
		Genres:      s.queryGenres(prof),
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
	})
	if err != nil {
		metrics.RecordErrorByComponent("aggregator", "fetch_failed")
		return nil, err
	}

	concerts := s.engine.Rank(prof, result.Candidates)
	metrics.RecordDiscoveryLatency(float64(s.clock().Sub(started).Milliseconds()))

	return &DiscoverResponse{
		Concerts:     concerts,
		TotalScanned: result.TotalScanned,
		Tier:         result.Tier,
		Note:         result.Note,
		Location:     location,
	}, nil
}

// queryGenres picks the profile's heaviest roots for source fan-out,
// skipping the catch-all bucket.
func (s *Service) queryGenres(prof *model.TasteProfile) []string {
	var genres []string
	for _, root := range prof.TopRootGenres(s.cfg.TopGenreCount) {
		if root == genre.RootOther {
			continue
		}
		genres = append(genres, root)
	}
	return genres
}

// AddFavorite saves a concert snapshot for the user.
func (s *Service) AddFavorite(ctx context.Context, userID string, concert model.ScoredConcert) (*model.Favorite, error) {
	if userID == "" || strings.TrimSpace(concert.ArtistName) == "" {
		return nil, ErrInvalidInput
	}

	favorite := &model.Favorite{
		ID:      uuid.NewString(),
		UserID:  userID,
		Concert: concert.Clone(),
		SavedAt: s.clock(),
	}
	if err := s.store.Favorites.Add(ctx, favorite); err != nil {
		return nil, err
	}

	metrics.RecordFavoriteSaved()
	return favorite, nil
}

// RemoveFavorite deletes one saved concert.
func (s *Service) RemoveFavorite(ctx context.Context, userID, favoriteID string) error {
	err := s.store.Favorites.Remove(ctx, userID, favoriteID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// ListFavorites returns the user's saved concerts, newest first.
func (s *Service) ListFavorites(ctx context.Context, userID string) ([]*model.Favorite, error) {
	return s.store.Favorites.ListByUser(ctx, userID)
}

// CreateShare snapshots the user's profile display fields under an
// opaque id.
func (s *Service) CreateShare(ctx context.Context, userID string) (*model.ShareSnapshot, error) {
	prof, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := &model.ShareSnapshot{
		ID:             uuid.NewString(),
		UserID:         userID,
		TopGenres:      prof.TopRootGenres(5),
		RootGenreMap:   prof.RootGenreMap,
		AudioFeatures:  prof.AudioFeatures,
		TopArtistCount: len(prof.TopArtistNames),
		Narrative:      prof.Narrative,
		CreatedAt:      s.clock(),
	}
	if err := s.store.Shares.Put(ctx, snapshot); err != nil {
		return nil, err
	}

	metrics.RecordShareCreated()
	return snapshot, nil
}

// GetShare returns a share snapshot by id.
func (s *Service) GetShare(ctx context.Context, shareID string) (*model.ShareSnapshot, error) {
	snapshot, err := s.store.Shares.Get(ctx, shareID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return snapshot, err
}

// Stats reports lightweight runtime numbers for the stats endpoint.
func (s *Service) Stats() map[string]any {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	uptime := time.Duration(0)
	if !s.started.IsZero() {
		uptime = s.clock().Sub(s.started)
	}

	configured := make([]string, 0, len(s.tiers))
	for _, src := range s.tiers {
		if src.Configured() {
			configured = append(configured, src.Name())
		}
	}

	return map[string]any{
		"uptime_seconds":     int64(uptime.Seconds()),
		"goroutines":         runtime.NumGoroutine(),
		"heap_bytes":         mem.HeapAlloc,
		"configured_sources": configured,
	}
}
