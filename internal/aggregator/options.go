package aggregator

import "github.com/okian/encore/pkg/logger"

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithMaxPages caps pagination per genre query.
func WithMaxPages(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.maxPages = n
		}
	}
}

// WithMaxCandidates caps the candidate set handed to scoring.
func WithMaxCandidates(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.maxCandidates = n
		}
	}
}

// WithLogger overrides the package logger.
func WithLogger(log logger.Logger) Option {
	return func(a *Aggregator) {
		if log != nil {
			a.log = log
		}
	}
}
