package genre

// Option configures a Taxonomy.
type Option func(*Taxonomy)

// WithRules replaces the default rule table.
func WithRules(rules []Rule) Option {
	return func(t *Taxonomy) {
		t.rules = rules
	}
}

// WithExtraRules appends rules to the default table.
func WithExtraRules(rules ...Rule) Option {
	return func(t *Taxonomy) {
		t.rules = append(append([]Rule(nil), t.rules...), rules...)
	}
}
