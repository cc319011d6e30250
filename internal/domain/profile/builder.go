// Package profile turns a user's listening history into a taste
// profile: weighted genre maps, aggregate audio features and the
// artist set used later to exclude already-known acts.
package profile

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/encore/internal/domain/genre"
	"github.com/okian/encore/internal/domain/model"
	"github.com/okian/encore/pkg/logger"
	"github.com/okian/encore/pkg/metrics"
)

// Artist is a single entry of a listening history, ordered by
// affinity: index 0 is the user's top artist.
type Artist struct {
	ID     string
	Name   string
	Genres []string
}

// HistorySource yields a user's top artists in affinity order.
type HistorySource interface {
	TopArtists(ctx context.Context, userID string, limit int) ([]Artist, error)
}

// TagLookup supplies genre tags for artists whose history entry
// carries none.
type TagLookup interface {
	ArtistTags(ctx context.Context, artistName string) ([]string, error)
}

// Narrator produces a short prose summary of a profile. Optional;
// failures never fail a build.
type Narrator interface {
	Narrative(ctx context.Context, profile *model.TasteProfile) (string, error)
}

// Builder assembles taste profiles.
type Builder struct {
	history     HistorySource
	tags        TagLookup
	narrator    Narrator
	taxonomy    *genre.Taxonomy
	topArtists  int
	concurrency int
	clock       func() time.Time
	log         logger.Logger
}

// New creates a Builder. A history source and taxonomy are required.
func New(history HistorySource, taxonomy *genre.Taxonomy, opts ...Option) *Builder {
	b := &Builder{
		history:     history,
		taxonomy:    taxonomy,
		topArtists:  50,
		concurrency: 4,
		clock:       time.Now,
		log:         logger.Named("profile"),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build fetches the user's top artists, enriches tag-less entries,
// canonicalizes tags and folds everything into a TasteProfile. Two
// builds over the same history produce the same genre maps.
func (b *Builder) Build(ctx context.Context, userID string) (*model.TasteProfile, error) {
	started := b.clock()
	metrics.RecordProfileBuild()

	if userID == "" {
		metrics.RecordProfileBuildError()
		return nil, ErrEmptyUserID
	}

	artists, err := b.history.TopArtists(ctx, userID, b.topArtists)
	if err != nil {
		metrics.RecordProfileBuildError()
		return nil, err
	}
	if len(artists) == 0 {
		metrics.RecordProfileBuildError()
		return nil, ErrEmptyHistory
	}

	tags := b.enrich(ctx, artists)

	genreMap := make(map[string]float64)
	rootMap := make(map[string]float64)
	names := make([]string, 0, len(artists))
	ids := make([]string, 0, len(artists))

	for rank, artist := range artists {
		// Rank decay: the top artist counts twice as much as the
		// artist at rank 1, and so on down the list.
		weight := 1.0 / float64(rank+1)

		names = append(names, artist.Name)
		if artist.ID != "" {
			ids = append(ids, artist.ID)
		}

		for _, tag := range tags[rank] {
			key := strings.ToLower(strings.TrimSpace(tag))
			if key == "" {
				continue
			}
			genreMap[key] += weight
			for root, share := range b.taxonomy.Canonicalize(tag) {
				rootMap[root] += weight * share
			}
		}
	}

	normalize(genreMap)
	normalize(rootMap)

	prof := &model.TasteProfile{
		ID:             uuid.NewString(),
		UserID:         userID,
		GenreMap:       genreMap,
		RootGenreMap:   rootMap,
		AudioFeatures:  featuresFor(rootMap),
		TopArtistNames: names,
		KnownArtistIDs: ids,
		CreatedAt:      b.clock(),
	}

	if b.narrator != nil {
		narrative, err := b.narrator.Narrative(ctx, prof)
		if err != nil {
			b.log.Warn(ctx, "narrative generation failed",
				logger.String("user_id", userID),
				logger.Error(err))
		} else {
			prof.Narrative = narrative
		}
	}

	metrics.RecordProfileBuildLatency(float64(b.clock().Sub(started).Milliseconds()))
	return prof, nil
}

// enrich returns per-artist tag slices, reusing history genres when
// present and consulting the tag lookup otherwise. Lookup failures
// degrade to no tags for that artist.
func (b *Builder) enrich(ctx context.Context, artists []Artist) [][]string {
	tags := make([][]string, len(artists))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, artist := range artists {
		if len(artist.Genres) > 0 {
			tags[i] = artist.Genres
			continue
		}
		if b.tags == nil {
			continue
		}

		g.Go(func() error {
			found, err := b.tags.ArtistTags(gctx, artist.Name)
			if err != nil {
				b.log.Debug(gctx, "tag lookup failed",
					logger.String("artist", artist.Name),
					logger.Error(err))
				return nil
			}
			tags[i] = found
			return nil
		})
	}

	// Workers only return nil; Wait just synchronizes.
	_ = g.Wait()
	return tags
}

// normalize scales weights so the maximum is 1.0 and rounds to three
// decimals, keeping profiles comparable across history sizes.
func normalize(m map[string]float64) {
	var max float64
	for _, w := range m {
		if w > max {
			max = w
		}
	}
	if max == 0 {
		return
	}
	for k, w := range m {
		m[k] = math.Round(w/max*1000) / 1000
	}
}

// rootFeatures approximates audio features per root genre. The
// profile's aggregate features are the root-weighted average.
var rootFeatures = map[string]model.AudioFeatures{
	"rock":       {Energy: 0.8, Danceability: 0.5, Valence: 0.55, Acousticness: 0.15, Instrumentalness: 0.1, Tempo: 125},
	"pop":        {Energy: 0.7, Danceability: 0.7, Valence: 0.65, Acousticness: 0.2, Instrumentalness: 0.05, Tempo: 118},
	"indie":      {Energy: 0.6, Danceability: 0.55, Valence: 0.5, Acousticness: 0.35, Instrumentalness: 0.15, Tempo: 115},
	"electronic": {Energy: 0.75, Danceability: 0.8, Valence: 0.5, Acousticness: 0.05, Instrumentalness: 0.6, Tempo: 124},
	"hip hop":    {Energy: 0.7, Danceability: 0.75, Valence: 0.55, Acousticness: 0.1, Instrumentalness: 0.05, Tempo: 95},
	"folk":       {Energy: 0.4, Danceability: 0.45, Valence: 0.5, Acousticness: 0.75, Instrumentalness: 0.1, Tempo: 105},
	"jazz":       {Energy: 0.45, Danceability: 0.5, Valence: 0.55, Acousticness: 0.6, Instrumentalness: 0.5, Tempo: 110},
	"metal":      {Energy: 0.9, Danceability: 0.4, Valence: 0.4, Acousticness: 0.05, Instrumentalness: 0.2, Tempo: 140},
	"punk":       {Energy: 0.9, Danceability: 0.45, Valence: 0.5, Acousticness: 0.05, Instrumentalness: 0.05, Tempo: 160},
	"soul":       {Energy: 0.55, Danceability: 0.65, Valence: 0.65, Acousticness: 0.4, Instrumentalness: 0.1, Tempo: 100},
	"r&b":        {Energy: 0.55, Danceability: 0.7, Valence: 0.55, Acousticness: 0.25, Instrumentalness: 0.05, Tempo: 95},
	"country":    {Energy: 0.55, Danceability: 0.55, Valence: 0.6, Acousticness: 0.5, Instrumentalness: 0.05, Tempo: 110},
	"blues":      {Energy: 0.5, Danceability: 0.5, Valence: 0.45, Acousticness: 0.55, Instrumentalness: 0.2, Tempo: 100},
	"classical":  {Energy: 0.3, Danceability: 0.25, Valence: 0.45, Acousticness: 0.9, Instrumentalness: 0.85, Tempo: 90},
	"reggae":     {Energy: 0.55, Danceability: 0.7, Valence: 0.7, Acousticness: 0.3, Instrumentalness: 0.1, Tempo: 80},
	"latin":      {Energy: 0.7, Danceability: 0.8, Valence: 0.75, Acousticness: 0.25, Instrumentalness: 0.1, Tempo: 105},
	"world":      {Energy: 0.55, Danceability: 0.6, Valence: 0.6, Acousticness: 0.45, Instrumentalness: 0.3, Tempo: 105},
	"other":      {Energy: 0.5, Danceability: 0.5, Valence: 0.5, Acousticness: 0.5, Instrumentalness: 0.25, Tempo: 110},
}

// featuresFor averages per-root features weighted by the profile's
// root genre map.
func featuresFor(rootMap map[string]float64) model.AudioFeatures {
	var total float64
	var agg model.AudioFeatures

	for root, weight := range rootMap {
		f, ok := rootFeatures[root]
		if !ok {
			f = rootFeatures[genre.RootOther]
		}
		agg.Energy += f.Energy * weight
		agg.Danceability += f.Danceability * weight
		agg.Valence += f.Valence * weight
		agg.Acousticness += f.Acousticness * weight
		agg.Instrumentalness += f.Instrumentalness * weight
		agg.Tempo += f.Tempo * weight
		total += weight
	}

	if total == 0 {
		return model.AudioFeatures{}
	}

	agg.Energy = round3(agg.Energy / total)
	agg.Danceability = round3(agg.Danceability / total)
	agg.Valence = round3(agg.Valence / total)
	agg.Acousticness = round3(agg.Acousticness / total)
	agg.Instrumentalness = round3(agg.Instrumentalness / total)
	agg.Tempo = round3(agg.Tempo / total)
	return agg
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
