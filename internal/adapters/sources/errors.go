package sources

import "errors"

var (
	// ErrNotConfigured is returned by Search on a source without
	// credentials.
	ErrNotConfigured = errors.New("sources: source not configured")

	// ErrRateLimited is returned when an upstream answers 429.
	ErrRateLimited = errors.New("sources: rate limited")

	// ErrBadCredentials is returned when an upstream rejects the key.
	ErrBadCredentials = errors.New("sources: bad credentials")

	// ErrSourceUnavailable is returned while a source's circuit
	// breaker is open.
	ErrSourceUnavailable = errors.New("sources: source unavailable")
)
