package matching

// Option configures an Engine.
type Option func(*Engine)

// WithMaxResults caps the ranked list length.
func WithMaxResults(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxResults = n
		}
	}
}

// WithIndieBoost rewards acts below the popularity threshold.
func WithIndieBoost(threshold, boost int) Option {
	return func(e *Engine) {
		e.indieThreshold = threshold
		e.indieBoost = boost
	}
}

// WithMainstreamPenalty penalizes acts above the popularity threshold.
func WithMainstreamPenalty(threshold, penalty int) Option {
	return func(e *Engine) {
		e.mainstreamThreshold = threshold
		e.mainstreamPenalty = penalty
	}
}

// WithUnknownPopularityBoost rewards acts with no popularity signal at
// all; truly obscure acts are the point of discovery.
func WithUnknownPopularityBoost(boost int) Option {
	return func(e *Engine) {
		e.unknownBoost = boost
	}
}

// WithIndieOnly drops mainstream acts entirely instead of penalizing
// them.
func WithIndieOnly(on bool) Option {
	return func(e *Engine) {
		e.indieOnly = on
	}
}
