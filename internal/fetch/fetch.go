// Package fetch performs upstream GET requests with bounded retries and wraps every
// result, good or bad, in a JSON envelope.
package fetch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 1 * time.Second
)

// drainLimit bounds how much of an error body is read to keep the connection reusable.
const drainLimit = 64 << 10

// Config is fixed at construction and never mutated.
type Config struct {
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
	UserAgent   string
}

// DefaultConfig returns the production settings: 30s per attempt, 3 attempts, 1s linear backoff.
func DefaultConfig() Config {
	return Config{
		Timeout:     DefaultTimeout,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// HTTPClient is the subset of *http.Client used by the Fetcher.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher issues GET requests and converts every result into an Outcome.
// It holds no per-request state and is safe for concurrent use.
type Fetcher struct {
	client  HTTPClient
	config  Config
	logger  *slog.Logger
	metrics *Metrics
}

// New creates a Fetcher. A nil logger falls back to slog.Default; metrics may be nil.
func New(client HTTPClient, config Config, logger *slog.Logger, metrics *Metrics) *Fetcher {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.RetryDelay < 0 {
		config.RetryDelay = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client:  client,
		config:  config,
		logger:  logger,
		metrics: metrics,
	}
}

// Config returns the settings the Fetcher was built with.
func (f *Fetcher) Config() Config {
	return f.config
}

// LinearBackoff waits unit, 2*unit, 3*unit, ... between attempts.
func LinearBackoff(unit time.Duration) retry.Backoff {
	var n int64
	return retry.BackoffFunc(func() (time.Duration, bool) {
		n++
		return time.Duration(n) * unit, false
	})
}

// Fetch GETs rawURL. Transient statuses, timeouts and network errors are retried with
// linear backoff up to MaxAttempts; everything else ends the call immediately.
// Fetch never returns an error: failures are reported inside the Outcome.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) Outcome {
	maxAttempts := f.config.MaxAttempts
	backoff := retry.WithMaxRetries(uint64(maxAttempts-1), LinearBackoff(f.config.RetryDelay))

	attempts := 0
	var body *string

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		start := time.Now()
		data, attemptErr := f.attempt(ctx, rawURL)
		duration := time.Since(start)

		if attemptErr == nil {
			f.metrics.observeAttempt(KindSuccess, duration)
			f.logger.Info("Upstream request succeeded",
				slog.String("url", rawURL),
				slog.Int("attempt", attempts),
				slog.Int("maxAttempts", maxAttempts),
				slog.Duration("duration", duration),
				slog.Int("bytes", len(data)))
			body = &data
			return nil
		}

		f.metrics.observeAttempt(attemptErr.Kind, duration)

		if attemptErr.Retryable() && attempts < maxAttempts {
			f.logger.Warn("Upstream request failed, retrying",
				slog.String("url", rawURL),
				slog.String("kind", string(attemptErr.Kind)),
				slog.Int("statusCode", attemptErr.StatusCode),
				slog.Int("attempt", attempts),
				slog.Int("maxAttempts", maxAttempts),
				slog.Duration("backoff", time.Duration(attempts)*f.config.RetryDelay),
				slog.Any("error", attemptErr))
			return retry.RetryableError(attemptErr)
		}

		f.logger.Error("Upstream request failed",
			slog.String("url", rawURL),
			slog.String("kind", string(attemptErr.Kind)),
			slog.Int("statusCode", attemptErr.StatusCode),
			slog.Int("attempt", attempts),
			slog.Int("maxAttempts", maxAttempts),
			slog.Duration("duration", duration),
			slog.Any("error", attemptErr))
		return attemptErr
	})

	outcome := f.outcome(ctx, rawURL, body, attempts, err)
	f.metrics.observeOutcome(outcome.Kind)
	return outcome
}

func (f *Fetcher) outcome(ctx context.Context, rawURL string, body *string, attempts int, err error) Outcome {
	if err == nil {
		if body != nil {
			return success(rawURL, *body, attempts)
		}
		return failure(rawURL, KindExhausted, "Maximum retry attempts exceeded", 0, attempts)
	}

	var attemptErr *AttemptError
	if errors.As(err, &attemptErr) {
		statusCode := 0
		if attemptErr.Kind == KindTransient || attemptErr.Kind == KindPermanent {
			statusCode = attemptErr.StatusCode
		}
		return failure(rawURL, attemptErr.Kind, attemptErr.message(), statusCode, attempts)
	}

	// retry.Do returns the bare context error when the caller gives up between attempts.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		f.logger.Warn("Upstream request cancelled",
			slog.String("url", rawURL),
			slog.Int("attempts", attempts),
			slog.Any("error", err))
		cancelled := &AttemptError{Kind: KindCancelled, Err: ctx.Err()}
		if cancelled.Err == nil {
			cancelled.Err = err
		}
		return failure(rawURL, KindCancelled, cancelled.message(), 0, attempts)
	}

	unexpected := &AttemptError{Kind: KindUnexpected, Err: err}
	return failure(rawURL, KindUnexpected, unexpected.message(), 0, attempts)
}

// attempt performs one GET under the per-attempt timeout and returns the body of a 2xx response.
func (f *Fetcher) attempt(ctx context.Context, rawURL string) (string, *AttemptError) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &AttemptError{Kind: KindUnexpected, Err: err}
	}
	if f.config.UserAgent != "" {
		req.Header.Set("User-Agent", f.config.UserAgent)
	}

	f.logger.Debug("Executing upstream request", slog.String("url", rawURL))
	resp, err := f.client.Do(req)
	if err != nil {
		return "", classify(ctx, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.logger.Warn("Failed to close response body", slog.Any("error", err))
		}
	}()

	if resp.Header.Get("X-From-Cache") == "1" {
		f.metrics.observeCacheHit()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))
		return "", statusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classify(ctx, err)
	}
	return string(data), nil
}
