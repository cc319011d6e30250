// Package genre canonicalizes free-text genre tags into a fixed set of
// root genres. Both the profile builder and the matching engine depend
// on it, so Canonicalize must stay pure and deterministic.
package genre

import (
	"sort"
	"strings"
)

// RootOther is the catch-all root for tags matching no rule.
const RootOther = "other"

// Rule maps a keyword, matched case-insensitively as a substring, to a
// canonical root genre.
type Rule struct {
	Keyword string
	Root    string
}

// Taxonomy holds an ordered rule list. Rules are evaluated
// longest-keyword-first so specific terms ("chamber pop") win over
// generic ones ("pop") when both match.
type Taxonomy struct {
	rules []Rule
}

// New creates a Taxonomy with the default rule set unless overridden.
func New(opts ...Option) *Taxonomy {
	t := &Taxonomy{
		rules: defaultRules,
	}

	for _, opt := range opts {
		opt(t)
	}

	// Fixed evaluation order: longest keyword first, then lexical.
	rules := append([]Rule(nil), t.rules...)
	sort.Slice(rules, func(i, j int) bool {
		if len(rules[i].Keyword) != len(rules[j].Keyword) {
			return len(rules[i].Keyword) > len(rules[j].Keyword)
		}
		return rules[i].Keyword < rules[j].Keyword
	})
	t.rules = rules

	return t
}

// Canonicalize maps a raw tag to root-genre weights summing to 1.0.
// A tag matching several rules splits its contribution evenly across
// the matched rules; a keyword contained in an already-matched, more
// specific keyword is suppressed. Unmatched tags map to RootOther.
func (t *Taxonomy) Canonicalize(rawTag string) map[string]float64 {
	tag := strings.ToLower(strings.TrimSpace(rawTag))
	if tag == "" {
		return map[string]float64{RootOther: 1}
	}

	var matched []Rule
	for _, rule := range t.rules {
		if !strings.Contains(tag, rule.Keyword) {
			continue
		}
		if shadowed(matched, rule.Keyword) {
			continue
		}
		matched = append(matched, rule)
	}

	if len(matched) == 0 {
		return map[string]float64{RootOther: 1}
	}

	share := 1.0 / float64(len(matched))
	weights := make(map[string]float64, len(matched))
	for _, rule := range matched {
		weights[rule.Root] += share
	}
	return weights
}

// Roots returns the sorted set of root genres reachable through the
// rule set, always including RootOther.
func (t *Taxonomy) Roots() []string {
	seen := map[string]struct{}{RootOther: {}}
	for _, rule := range t.rules {
		seen[rule.Root] = struct{}{}
	}
	roots := make([]string, 0, len(seen))
	for root := range seen {
		roots = append(roots, root)
	}
	sort.Strings(roots)
	return roots
}

// shadowed reports whether keyword is a substring of an already-matched,
// longer keyword ("pop" inside "chamber pop").
func shadowed(matched []Rule, keyword string) bool {
	for _, m := range matched {
		if strings.Contains(m.Keyword, keyword) {
			return true
		}
	}
	return false
}

// defaultRules folds the genre vocabulary seen in listening data into a
// small root set. Order here does not matter; New sorts by specificity.
var defaultRules = []Rule{
	// rock
	{Keyword: "rock", Root: "rock"},
	{Keyword: "grunge", Root: "rock"},
	{Keyword: "garage", Root: "rock"},
	{Keyword: "psychedelic", Root: "rock"},
	{Keyword: "shoegaze", Root: "rock"},
	{Keyword: "prog", Root: "rock"},
	{Keyword: "new wave", Root: "rock"},
	{Keyword: "alternative", Root: "rock"},

	// pop
	{Keyword: "pop", Root: "pop"},
	{Keyword: "chamber pop", Root: "pop"},
	{Keyword: "dream pop", Root: "pop"},
	{Keyword: "disco", Root: "pop"},

	// indie
	{Keyword: "indie", Root: "indie"},
	{Keyword: "lo-fi", Root: "indie"},
	{Keyword: "lofi", Root: "indie"},
	{Keyword: "singer-songwriter", Root: "indie"},

	// electronic
	{Keyword: "electronic", Root: "electronic"},
	{Keyword: "electronica", Root: "electronic"},
	{Keyword: "synth", Root: "electronic"},
	{Keyword: "techno", Root: "electronic"},
	{Keyword: "house", Root: "electronic"},
	{Keyword: "dance", Root: "electronic"},
	{Keyword: "edm", Root: "electronic"},
	{Keyword: "ambient", Root: "electronic"},
	{Keyword: "idm", Root: "electronic"},
	{Keyword: "trance", Root: "electronic"},
	{Keyword: "dubstep", Root: "electronic"},
	{Keyword: "drum and bass", Root: "electronic"},
	{Keyword: "industrial", Root: "electronic"},

	// hip hop
	{Keyword: "hip hop", Root: "hip hop"},
	{Keyword: "hip-hop", Root: "hip hop"},
	{Keyword: "rap", Root: "hip hop"},
	{Keyword: "trap", Root: "hip hop"},
	{Keyword: "drill", Root: "hip hop"},
	{Keyword: "grime", Root: "hip hop"},

	// folk
	{Keyword: "folk", Root: "folk"},
	{Keyword: "americana", Root: "folk"},
	{Keyword: "bluegrass", Root: "folk"},
	{Keyword: "acoustic", Root: "folk"},

	// jazz
	{Keyword: "jazz", Root: "jazz"},
	{Keyword: "bebop", Root: "jazz"},
	{Keyword: "swing", Root: "jazz"},

	// metal
	{Keyword: "metal", Root: "metal"},
	{Keyword: "doom", Root: "metal"},
	{Keyword: "thrash", Root: "metal"},

	// punk
	{Keyword: "punk", Root: "punk"},
	{Keyword: "post-punk", Root: "punk"},
	{Keyword: "hardcore", Root: "punk"},
	{Keyword: "emo", Root: "punk"},
	{Keyword: "ska", Root: "punk"},

	// soul
	{Keyword: "soul", Root: "soul"},
	{Keyword: "funk", Root: "soul"},
	{Keyword: "motown", Root: "soul"},
	{Keyword: "gospel", Root: "soul"},

	// r&b
	{Keyword: "r&b", Root: "r&b"},
	{Keyword: "rnb", Root: "r&b"},

	// country
	{Keyword: "country", Root: "country"},
	{Keyword: "honky tonk", Root: "country"},

	// blues
	{Keyword: "blues", Root: "blues"},

	// classical
	{Keyword: "classical", Root: "classical"},
	{Keyword: "orchestral", Root: "classical"},
	{Keyword: "chamber", Root: "classical"},

	// reggae
	{Keyword: "reggae", Root: "reggae"},
	{Keyword: "dub", Root: "reggae"},
	{Keyword: "dancehall", Root: "reggae"},

	// latin
	{Keyword: "latin", Root: "latin"},
	{Keyword: "salsa", Root: "latin"},
	{Keyword: "bossa nova", Root: "latin"},
	{Keyword: "cumbia", Root: "latin"},

	// world
	{Keyword: "world", Root: "world"},
	{Keyword: "afrobeat", Root: "world"},
}
