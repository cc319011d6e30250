package geo

import "github.com/okian/encore/pkg/logger"

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithGeocoder enables the external fallback for cities outside the
// bundled gazetteer.
func WithGeocoder(g Geocoder) ResolverOption {
	return func(r *Resolver) {
		r.geocoder = g
	}
}

// WithLogger overrides the package logger.
func WithLogger(log logger.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}
