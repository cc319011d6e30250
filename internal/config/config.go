// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CacheTTLSeconds bounds how long a discovery fan-out result is reused.
	CacheTTLSeconds int `koanf:"cache_ttl_seconds"`

	// ShareTTLSeconds bounds share snapshot retention. Zero means no expiry.
	ShareTTLSeconds int `koanf:"share_ttl_seconds"`

	// TopArtistCount is how many top artists feed the taste profile.
	TopArtistCount int `koanf:"top_artist_count"`

	// TopGenreCount is how many root genres are queried per discovery request.
	TopGenreCount int `koanf:"top_genre_count"`

	// MaxPagesPerQuery caps pagination per genre query against a source.
	MaxPagesPerQuery int `koanf:"max_pages_per_query"`

	// MaxCandidates caps total raw candidates collected per request.
	MaxCandidates int `koanf:"max_candidates"`

	// MaxResults caps the scored concerts returned to the caller.
	MaxResults int `koanf:"max_results"`

	// EnrichConcurrency bounds parallel genre-enrichment lookups per build.
	EnrichConcurrency int `koanf:"enrich_concurrency"`

	// Popularity tuning. Candidates under IndieThreshold get IndieBoost
	// added to their score; candidates over MainstreamThreshold get
	// MainstreamPenalty subtracted (or are dropped under IndieOnly).
	IndieThreshold         int     `koanf:"indie_threshold"`
	IndieBoost             float64 `koanf:"indie_boost"`
	MainstreamThreshold    int     `koanf:"mainstream_threshold"`
	MainstreamPenalty      float64 `koanf:"mainstream_penalty"`
	UnknownPopularityBoost float64 `koanf:"unknown_popularity_boost"`
	IndieOnly              bool    `koanf:"indie_only"`

	// SourceTimeoutMS bounds each external source call.
	SourceTimeoutMS int `koanf:"source_timeout_ms"`

	// SourceRetries is the retry count on transient network failure.
	SourceRetries int `koanf:"source_retries"`

	// DiscoveryTimeoutMS bounds a whole discovery request.
	DiscoveryTimeoutMS int `koanf:"discovery_timeout_ms"`

	// External provider endpoints and credentials. Empty API keys mean
	// the source is unconfigured and is skipped by the aggregator.
	JambaseAPIKey       string `koanf:"jambase_api_key"`
	JambaseBaseURL      string `koanf:"jambase_base_url"`
	TicketmasterAPIKey  string `koanf:"ticketmaster_api_key"`
	TicketmasterBaseURL string `koanf:"ticketmaster_base_url"`
	MusicBrainzBaseURL  string `koanf:"musicbrainz_base_url"`
	GeocoderBaseURL     string `koanf:"geocoder_base_url"`
	SpotifyBaseURL      string `koanf:"spotify_base_url"`
	SpotifyAccessToken  string `koanf:"spotify_access_token"`
	NarratorBaseURL     string `koanf:"narrator_base_url"`
	NarratorAPIKey      string `koanf:"narrator_api_key"`
}

// New creates a Config populated with defaults. Load layers file and
// environment overrides on top of these values.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		Addr:                   ":9080",
		CacheTTLSeconds:        3600,
		ShareTTLSeconds:        0,
		TopArtistCount:         50,
		TopGenreCount:          5,
		MaxPagesPerQuery:       3,
		MaxCandidates:          200,
		MaxResults:             25,
		EnrichConcurrency:      4,
		IndieThreshold:         40,
		IndieBoost:             10,
		MainstreamThreshold:    75,
		MainstreamPenalty:      10,
		UnknownPopularityBoost: 5,
		IndieOnly:              false,
		SourceTimeoutMS:        15_000,
		SourceRetries:          1,
		DiscoveryTimeoutMS:     30_000,
		JambaseBaseURL:         "https://apiv3.jambase.com",
		TicketmasterBaseURL:    "https://app.ticketmaster.com/discovery/v2",
		MusicBrainzBaseURL:     "https://musicbrainz.org/ws/2",
		GeocoderBaseURL:        "https://nominatim.openstreetmap.org",
		SpotifyBaseURL:         "https://api.spotify.com/v1",
	}
}
