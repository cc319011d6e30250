package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/okian/encore/pkg/logger"
	"github.com/okian/encore/pkg/metrics"
)

// client wraps an http.Client with a circuit breaker, bounded retries
// and JSON decoding. One client per upstream so a flapping provider
// trips only its own breaker.
type client struct {
	name    string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	retries int
	log     logger.Logger
}

func newClient(name string, timeout time.Duration, retries int) *client {
	log := logger.Named("sources." + name)

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 2,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && counts.TotalFailures*2 > counts.Requests
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn(context.Background(), "circuit breaker state change",
				logger.String("source", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()))
		},
	}

	return &client{
		name:    name,
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		retries: retries,
		log:     log,
	}
}

// getJSON fetches url and decodes the body into out. Transient
// failures (network errors, 5xx, 429) are retried up to the configured
// limit; other 4xx responses fail immediately.
func (c *client) getJSON(ctx context.Context, url string, header http.Header, out any) error {
	started := time.Now()
	metrics.RecordSourceQuery(c.name)

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		body, err := c.breaker.Execute(func() ([]byte, error) {
			return c.do(ctx, url, header)
		})
		if err == nil {
			metrics.RecordSourceLatency(c.name, float64(time.Since(started).Milliseconds()))
			if err := json.Unmarshal(body, out); err != nil {
				metrics.RecordSourceFailure(c.name, "decode")
				return fmt.Errorf("%s: decode response: %w", c.name, err)
			}
			return nil
		}

		lastErr = err
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordSourceFailure(c.name, "breaker_open")
			return fmt.Errorf("%s: %w", c.name, ErrSourceUnavailable)
		}
		if !retryable(err) {
			break
		}
		c.log.Debug(ctx, "retrying upstream request",
			logger.Int("attempt", attempt+1),
			logger.Error(err))
	}

	metrics.RecordSourceFailure(c.name, failureReason(lastErr))
	return fmt.Errorf("%s: %w", c.name, lastErr)
}

func (c *client) do(ctx context.Context, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return io.ReadAll(resp.Body)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrBadCredentials
	case resp.StatusCode >= 500:
		return nil, &statusError{code: resp.StatusCode}
	default:
		return nil, &permanentError{code: resp.StatusCode}
	}
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("upstream status %d", e.code)
}

type permanentError struct {
	code int
}

func (e *permanentError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// retryable reports whether another attempt can help: server errors,
// rate limits and network failures can; bad requests and credentials
// cannot.
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return true
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	if errors.Is(err, ErrBadCredentials) {
		return false
	}
	var pe *permanentError
	if errors.As(err, &pe) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// Remaining errors are transport-level.
	return true
}

func failureReason(err error) string {
	switch {
	case err == nil:
		return "unknown"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrBadCredentials):
		return "bad_credentials"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
