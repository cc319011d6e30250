package aggregator

import (
	"strings"

	"github.com/okian/encore/internal/domain/model"
)

// deduper tracks candidates already accepted in one aggregation pass.
// Identity is the provider id when present; otherwise the artist,
// venue and calendar day, so the same show listed by two providers
// without ids still collapses.
type deduper struct {
	keys map[string]struct{}
}

func newDeduper() *deduper {
	return &deduper{keys: make(map[string]struct{})}
}

func (d *deduper) seen(c model.Candidate) bool {
	key := identity(c)
	if _, ok := d.keys[key]; ok {
		return true
	}
	d.keys[key] = struct{}{}
	return false
}

func identity(c model.Candidate) string {
	if c.SourceID != "" {
		return c.Source + "|" + c.SourceID
	}

	day := ""
	if !c.Date.IsZero() {
		day = c.Date.UTC().Format("2006-01-02")
	}
	return strings.ToLower(strings.TrimSpace(c.ArtistName)) + "|" +
		strings.ToLower(strings.TrimSpace(c.VenueName)) + "|" + day
}
