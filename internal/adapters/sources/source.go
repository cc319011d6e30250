// Package sources holds the clients for upstream event and music
// metadata providers. Each event provider implements EventSource; the
// aggregator never talks to a provider directly.
package sources

import (
	"context"
	"time"

	"github.com/okian/encore/internal/domain/model"
)

// Source names as they appear on candidates and in metrics.
const (
	SourceJambase      = "jambase"
	SourceTicketmaster = "ticketmaster"
	SourceDiscovery    = "discovery"
)

// Query describes one provider search.
type Query struct {
	// City is the resolved display name; Lat/Lng the resolved point.
	City        string
	Lat         float64
	Lng         float64
	RadiusMiles int

	// Genre is a root genre; sources translate it to their own
	// vocabulary via MapGenre. Empty means all genres.
	Genre string

	DateFrom time.Time
	DateTo   time.Time
}

// Page is one page of provider results.
type Page struct {
	Events  []model.Candidate
	HasMore bool
}

// EventSource is one upstream event provider.
type EventSource interface {
	// Name identifies the source in candidates, logs and metrics.
	Name() string

	// Configured reports whether the source has the credentials it
	// needs. Unconfigured sources are skipped, not errored.
	Configured() bool

	// Search returns one page of events. Page numbering starts at 0.
	Search(ctx context.Context, q Query, page int) (Page, error)
}

// mapGenre translates a root genre into a provider vocabulary. Roots
// absent from the table are dropped from that provider's query set,
// so callers treat an empty result as "skip this genre".
func mapGenre(vocab map[string]string, root string) string {
	return vocab[root]
}
