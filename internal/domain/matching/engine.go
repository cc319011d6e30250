// Package matching scores event candidates against a taste profile
// and ranks them into the final concert list.
package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/okian/encore/internal/domain/genre"
	"github.com/okian/encore/internal/domain/model"
	"github.com/okian/encore/pkg/metrics"
)

// Engine ranks candidates. Scoring is pure: the same profile and
// candidate list always produce the same ordering.
type Engine struct {
	taxonomy            *genre.Taxonomy
	maxResults          int
	indieThreshold      int
	indieBoost          int
	mainstreamThreshold int
	mainstreamPenalty   int
	unknownBoost        int
	indieOnly           bool
}

// New creates an Engine with discovery-oriented defaults: acts under
// popularity 40 get a boost, acts over 75 a penalty.
func New(taxonomy *genre.Taxonomy, opts ...Option) *Engine {
	e := &Engine{
		taxonomy:            taxonomy,
		maxResults:          25,
		indieThreshold:      40,
		indieBoost:          10,
		mainstreamThreshold: 75,
		mainstreamPenalty:   10,
		unknownBoost:        5,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Rank filters out acts the user already knows, scores the rest and
// returns the top results in rank order.
func (e *Engine) Rank(prof *model.TasteProfile, candidates []model.Candidate) []model.ScoredConcert {
	known := knownActs(prof)

	scored := make([]model.ScoredConcert, 0, len(candidates))
	for _, cand := range candidates {
		if e.excluded(cand, known) {
			continue
		}

		score, explanation := e.score(prof, cand)
		if e.indieOnly && cand.Popularity != nil && *cand.Popularity > e.mainstreamThreshold {
			continue
		}

		scored = append(scored, model.ScoredConcert{
			Candidate:        cand,
			MatchScore:       score,
			MatchExplanation: explanation,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].MatchScore != scored[j].MatchScore {
			return scored[i].MatchScore > scored[j].MatchScore
		}
		if !scored[i].Date.Equal(scored[j].Date) {
			// Unknown dates sort last.
			if scored[i].Date.IsZero() {
				return false
			}
			if scored[j].Date.IsZero() {
				return true
			}
			return scored[i].Date.Before(scored[j].Date)
		}
		return scored[i].ArtistName < scored[j].ArtistName
	})

	if len(scored) > e.maxResults {
		scored = scored[:e.maxResults]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}

	metrics.RecordConcertsReturned(len(scored))
	return scored
}

// score computes the 0..100 match score and its explanation.
func (e *Engine) score(prof *model.TasteProfile, cand model.Candidate) (int, string) {
	candVec := e.candidateVector(cand.Genres)

	var score int
	var explanation string

	if len(prof.RootGenreMap) == 0 || len(candVec) == 0 {
		// No genre signal on one side: fall back to a popularity-inverse
		// baseline so obscure acts still surface.
		pop := 50
		if cand.Popularity != nil {
			pop = *cand.Popularity
		}
		score = clamp(100 - pop)
		explanation = "no genre overlap data; ranked by obscurity"
	} else {
		var dot float64
		for root, share := range candVec {
			dot += share * prof.RootGenreMap[root]
		}
		score = clamp(int(math.Round(dot * 100)))
		explanation = explain(candVec, prof.RootGenreMap)
	}

	switch {
	case cand.Popularity == nil:
		score = clamp(score + e.unknownBoost)
	case *cand.Popularity < e.indieThreshold:
		score = clamp(score + e.indieBoost)
		explanation += "; under-the-radar boost"
	case *cand.Popularity > e.mainstreamThreshold:
		score = clamp(score - e.mainstreamPenalty)
	}

	return score, explanation
}

// candidateVector folds a candidate's genre tags into root weights
// summing to 1.
func (e *Engine) candidateVector(tags []string) map[string]float64 {
	vec := make(map[string]float64)
	var total float64
	for _, tag := range tags {
		for root, share := range e.taxonomy.Canonicalize(tag) {
			if root == genre.RootOther {
				continue
			}
			vec[root] += share
			total += share
		}
	}
	if total == 0 {
		return nil
	}
	for root := range vec {
		vec[root] /= total
	}
	return vec
}

// explain names the top overlapping roots with the candidate's share
// of each, e.g. "matches your taste: electronic (80%), folk (20%)".
func explain(candVec, profRoots map[string]float64) string {
	type overlap struct {
		root   string
		weight float64
		share  float64
	}

	var overlaps []overlap
	for root, share := range candVec {
		if profRoots[root] <= 0 {
			continue
		}
		overlaps = append(overlaps, overlap{
			root:   root,
			weight: share * profRoots[root],
			share:  share,
		})
	}
	if len(overlaps) == 0 {
		return "outside your usual genres"
	}

	sort.Slice(overlaps, func(i, j int) bool {
		if overlaps[i].weight != overlaps[j].weight {
			return overlaps[i].weight > overlaps[j].weight
		}
		return overlaps[i].root < overlaps[j].root
	})
	if len(overlaps) > 3 {
		overlaps = overlaps[:3]
	}

	parts := make([]string, 0, len(overlaps))
	for _, o := range overlaps {
		parts = append(parts, fmt.Sprintf("%s (%d%%)", o.root, int(math.Round(o.share*100))))
	}
	return "matches your taste: " + strings.Join(parts, ", ")
}

// knownActs builds the exclusion set of normalized artist names and
// ids the user already listens to.
func knownActs(prof *model.TasteProfile) map[string]struct{} {
	known := make(map[string]struct{}, len(prof.TopArtistNames)+len(prof.KnownArtistIDs))
	for _, name := range prof.TopArtistNames {
		known[normalizeName(name)] = struct{}{}
	}
	for _, id := range prof.KnownArtistIDs {
		known[id] = struct{}{}
	}
	return known
}

// excluded reports whether the candidate is an act the user already
// knows, including tribute bands named after a known act.
func (e *Engine) excluded(cand model.Candidate, known map[string]struct{}) bool {
	name := normalizeName(cand.ArtistName)
	if _, ok := known[name]; ok {
		return true
	}
	if target := tributeTarget(name); target != "" {
		if _, ok := known[target]; ok {
			return true
		}
	}
	return false
}

// tributeTarget extracts the honored act from tribute-band names such
// as "tribute to radiohead" or "radiohead tribute".
func tributeTarget(name string) string {
	if idx := strings.Index(name, "tribute to "); idx >= 0 {
		return strings.TrimSpace(name[idx+len("tribute to "):])
	}
	for _, suffix := range []string{" tribute band", " tribute"} {
		if strings.HasSuffix(name, suffix) {
			target := strings.TrimSuffix(name, suffix)
			target = strings.TrimSuffix(strings.TrimSpace(target), " -")
			target = strings.TrimPrefix(target, "a ")
			return strings.TrimSpace(target)
		}
	}
	return ""
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
