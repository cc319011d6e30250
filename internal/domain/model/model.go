// Package model contains domain models passed between layers.
package model

import (
	"sort"
	"time"
)

// AudioFeatures summarizes a listener's sound preferences. Values other
// than Tempo are bounded scalars in [0, 1]; Tempo is beats per minute.
// These are estimated from genre weights, not measured per track.
type AudioFeatures struct {
	Energy           float64 `json:"energy"`
	Danceability     float64 `json:"danceability"`
	Valence          float64 `json:"valence"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Tempo            float64 `json:"tempo"`
}

// TasteProfile is a listener's musical taste fingerprint. At most one
// profile exists per user; a rebuild replaces it wholesale.
type TasteProfile struct {
	ID             string             `json:"id"`
	UserID         string             `json:"user_id"`
	GenreMap       map[string]float64 `json:"genre_map"`
	RootGenreMap   map[string]float64 `json:"root_genre_map"`
	AudioFeatures  AudioFeatures      `json:"audio_features"`
	TopArtistNames []string           `json:"top_artist_names"`
	KnownArtistIDs []string           `json:"known_artist_ids"`
	Narrative      string             `json:"narrative,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// TopRootGenres returns the n heaviest root genres, weight descending,
// name ascending on ties. The order is stable for identical maps.
func (p *TasteProfile) TopRootGenres(n int) []string {
	type rw struct {
		root   string
		weight float64
	}
	ranked := make([]rw, 0, len(p.RootGenreMap))
	for root, weight := range p.RootGenreMap {
		ranked = append(ranked, rw{root: root, weight: weight})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].weight != ranked[j].weight {
			return ranked[i].weight > ranked[j].weight
		}
		return ranked[i].root < ranked[j].root
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	roots := make([]string, 0, n)
	for _, r := range ranked[:n] {
		roots = append(roots, r.root)
	}
	return roots
}

// Clone returns a deep copy of the profile.
func (p *TasteProfile) Clone() *TasteProfile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.GenreMap = cloneFloatMap(p.GenreMap)
	cp.RootGenreMap = cloneFloatMap(p.RootGenreMap)
	cp.TopArtistNames = append([]string(nil), p.TopArtistNames...)
	cp.KnownArtistIDs = append([]string(nil), p.KnownArtistIDs...)
	return &cp
}

func cloneFloatMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Candidate is a normalized live-event candidate produced at the
// aggregator boundary. Provider-specific shapes never leak past it.
type Candidate struct {
	SourceID   string    `json:"source_id"`
	ArtistName string    `json:"artist_name"`
	Genres     []string  `json:"genres"`
	VenueName  string    `json:"venue_name"`
	VenueCity  string    `json:"venue_city"`
	Date       time.Time `json:"date"` // zero means unknown
	TicketURL  string    `json:"ticket_url,omitempty"`
	EventURL   string    `json:"event_url,omitempty"`
	Popularity *int      `json:"popularity,omitempty"` // nil means unknown
	Source     string    `json:"source"`
}

// Clone returns a deep copy of the candidate.
func (c Candidate) Clone() Candidate {
	cp := c
	cp.Genres = append([]string(nil), c.Genres...)
	if c.Popularity != nil {
		pop := *c.Popularity
		cp.Popularity = &pop
	}
	return cp
}

// ScoredConcert is a candidate with its match score and explanation.
// Rank is assigned at output time, 1-based.
type ScoredConcert struct {
	Candidate
	MatchScore       int    `json:"match_score"`
	MatchExplanation string `json:"match_explanation"`
	Rank             int    `json:"rank"`
}

// Clone returns a deep copy of the scored concert.
func (s ScoredConcert) Clone() ScoredConcert {
	cp := s
	cp.Candidate = s.Candidate.Clone()
	return cp
}

// Favorite is an immutable snapshot of a scored concert saved by a user.
// It never re-syncs with the live event.
type Favorite struct {
	ID      string        `json:"id"`
	UserID  string        `json:"user_id"`
	Concert ScoredConcert `json:"concert"`
	SavedAt time.Time     `json:"saved_at"`
}

// ShareSnapshot is an immutable copy of a profile's display fields,
// retrievable by opaque id.
type ShareSnapshot struct {
	ID             string             `json:"id"`
	UserID         string             `json:"user_id"`
	TopGenres      []string           `json:"top_genres"`
	RootGenreMap   map[string]float64 `json:"root_genre_map"`
	AudioFeatures  AudioFeatures      `json:"audio_features"`
	TopArtistCount int                `json:"top_artist_count"`
	Narrative      string             `json:"narrative,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}
