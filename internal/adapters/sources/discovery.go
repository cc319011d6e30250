package sources

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/okian/encore/internal/domain/model"
	"github.com/okian/encore/pkg/logger"
)

// ArtistFinder discovers artists by genre tag. Satisfied by
// *MusicBrainzClient.
type ArtistFinder interface {
	ArtistsByTag(ctx context.Context, tag string, limit int) ([]DiscoveredArtist, error)
}

// PopularityLookup resolves an artist's popularity. Satisfied by
// *SpotifyClient.
type PopularityLookup interface {
	ArtistPopularity(ctx context.Context, artistName string) (*int, error)
}

// DiscoverySource synthesizes plausible local listings from artists
// discovered by genre tag. It is the last-resort tier when no real
// event provider returns anything; its candidates carry the
// "discovery" source marker so callers can tell them apart.
type DiscoverySource struct {
	finder     ArtistFinder
	popularity PopularityLookup
	clock      func() time.Time
	log        logger.Logger
}

// NewDiscoverySource creates the synthesized fallback source.
func NewDiscoverySource(finder ArtistFinder, opts ...DiscoveryOption) *DiscoverySource {
	s := &DiscoverySource{
		finder: finder,
		clock:  time.Now,
		log:    logger.Named("sources.discovery"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DiscoveryOption configures a DiscoverySource.
type DiscoveryOption func(*DiscoverySource)

// WithPopularityLookup enables popularity enrichment for discovered
// artists.
func WithPopularityLookup(p PopularityLookup) DiscoveryOption {
	return func(s *DiscoverySource) {
		s.popularity = p
	}
}

// WithDiscoveryClock overrides the time source, for tests.
func WithDiscoveryClock(clock func() time.Time) DiscoveryOption {
	return func(s *DiscoverySource) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func (s *DiscoverySource) Name() string { return SourceDiscovery }

// Configured is true whenever an artist finder is wired; the fallback
// needs no credentials of its own.
func (s *DiscoverySource) Configured() bool { return s.finder != nil }

// Search discovers artists for the query's genre and synthesizes one
// listing per artist at a venue typical for the city. Everything is
// deterministic for a given artist, city and date window.
func (s *DiscoverySource) Search(ctx context.Context, q Query, page int) (Page, error) {
	if !s.Configured() {
		return Page{}, ErrNotConfigured
	}
	if page > 0 {
		return Page{}, nil
	}

	tag := q.Genre
	if tag == "" {
		tag = "indie"
	}

	discovered, err := s.finder.ArtistsByTag(ctx, tag, 30)
	if err != nil {
		return Page{}, err
	}

	venues := venuesFor(q.City)
	from, to := s.dateWindow(q)

	events := make([]model.Candidate, 0, len(discovered))
	for _, artist := range discovered {
		date := eventDate(artist.Name, q.City, from, to)
		venue := venues[seed(artist.Name+q.City)%uint64(len(venues))]

		var popularity *int
		if s.popularity != nil {
			pop, err := s.popularity.ArtistPopularity(ctx, artist.Name)
			if err != nil {
				s.log.Debug(ctx, "popularity lookup failed",
					logger.String("artist", artist.Name),
					logger.Error(err))
			} else {
				popularity = pop
			}
		}

		query := strings.ReplaceAll(artist.Name, " ", "+")
		events = append(events, model.Candidate{
			SourceID:   eventID(artist.Name, q.City, date),
			ArtistName: artist.Name,
			Genres:     artist.Tags,
			VenueName:  venue,
			VenueCity:  q.City,
			Date:       date,
			TicketURL:  "https://www.google.com/search?q=" + query + "+concert+tickets",
			Popularity: popularity,
			Source:     SourceDiscovery,
		})
	}

	return Page{Events: events}, nil
}

// dateWindow bounds synthesized dates: the query's range when given,
// otherwise tomorrow through ninety days out.
func (s *DiscoverySource) dateWindow(q Query) (time.Time, time.Time) {
	from := q.DateFrom
	if from.IsZero() {
		from = s.clock().UTC().AddDate(0, 0, 1)
	}
	to := q.DateTo
	if to.IsZero() || !to.After(from) {
		to = from.AddDate(0, 0, 90)
	}
	return from, to
}

// eventDate picks a deterministic show date inside the window, nudged
// onto Thursday through Saturday where concerts actually land.
func eventDate(artist, city string, from, to time.Time) time.Time {
	window := int(to.Sub(from).Hours() / 24)
	if window < 7 {
		window = 7
	}

	h := seed(artist + "|" + city)
	offset := int(h%uint64(window)) + 1
	date := from.AddDate(0, 0, offset)

	switch wd := date.Weekday(); {
	case wd >= time.Monday && wd <= time.Wednesday:
		date = date.AddDate(0, 0, int(time.Thursday-wd))
	case wd == time.Sunday:
		date = date.AddDate(0, 0, -1)
	}

	hour := 19 + int(h%3)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.UTC)
}

func eventID(artist, city string, date time.Time) string {
	return fmt.Sprintf("%012x", seed(artist+":"+city+":"+date.Format(time.RFC3339)))[:12]
}

func seed(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
