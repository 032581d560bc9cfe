package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/preston-bernstein/wager-tracker/internal/logging"
	"github.com/preston-bernstein/wager-tracker/internal/metrics"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	BaseBackoff       = 300 * time.Millisecond
	backoffMultiplier = 2
	maxBackoff        = 30 * time.Second
	maxDrainBytes     = 4 << 10
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config wires a Client to its provider identity and collaborators.
type Config struct {
	HTTPClient *http.Client
	Provider   string
	Limiter    *rate.Limiter
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Options tune a single FetchJSON call.
type Options struct {
	Headers map[string]string
	Timeout time.Duration
	// MaxRetries < 0 disables retries; 0 selects DefaultMaxRetries.
	MaxRetries int
	CacheKey   string
	Cycle      *Cycle
}

// Client performs GET requests returning JSON, with per-attempt timeouts,
// bounded retries and per-cycle de-duplication.
type Client struct {
	httpClient httpDoer
	provider   string
	limiter    *rate.Limiter
	logger     *slog.Logger
	metrics    *metrics.Recorder
	newBackOff func() backoff.BackOff
	sleep      func(ctx context.Context, d time.Duration) error
	now        func() time.Time
}

func NewClient(cfg Config) *Client {
	var doer httpDoer = http.DefaultClient
	if cfg.HTTPClient != nil {
		doer = cfg.HTTPClient
	}
	return &Client{
		httpClient: doer,
		provider:   cfg.Provider,
		limiter:    cfg.Limiter,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		newBackOff: exponentialSchedule,
		sleep:      sleepContext,
		now:        time.Now,
	}
}

// Provider names the upstream this client talks to.
func (c *Client) Provider() string {
	return c.provider
}

// PerMinute builds a limiter allowing n requests per minute with a burst of
// n. Non-positive n disables limiting.
func PerMinute(n int) *rate.Limiter {
	if n <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)
}

// FetchJSON GETs rawURL and decodes the body into dest. Every failure is a
// classified *Error.
func (c *Client) FetchJSON(ctx context.Context, rawURL string, opts Options, dest any) error {
	body, err := c.fetch(ctx, rawURL, opts)
	if err != nil {
		return Classify(err, c.provider)
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &Error{
			Kind:     KindUnknown,
			Message:  fmt.Sprintf("decode response from %s: %v", rawURL, err),
			Provider: c.provider,
			Err:      err,
		}
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, rawURL string, opts Options) ([]byte, error) {
	if opts.Cycle == nil || opts.CacheKey == "" {
		return c.fetchWithRetry(ctx, rawURL, opts)
	}
	body, shared, err := opts.Cycle.Do(ctx, opts.CacheKey, func() ([]byte, error) {
		return c.fetchWithRetry(ctx, rawURL, opts)
	})
	c.metrics.RecordCacheLookup(c.provider, shared)
	if shared {
		logging.Debug(c.logger, "cycle cache hit",
			logging.FieldProvider, c.provider,
			logging.FieldCycleID, opts.Cycle.ID(),
			"cache_key", opts.CacheKey,
		)
	}
	return body, err
}

func (c *Client) fetchWithRetry(ctx context.Context, rawURL string, opts Options) ([]byte, error) {
	maxRetries := resolveMaxRetries(opts.MaxRetries)
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	schedule := c.newBackOff()

	for attempt := 1; ; attempt++ {
		body, err := c.attempt(ctx, rawURL, opts.Headers, timeout)
		if err == nil {
			return body, nil
		}
		if !err.Retryable() || attempt > maxRetries || ctx.Err() != nil {
			logging.Warn(c.logger, "provider request failed",
				logging.FieldProvider, c.provider,
				logging.FieldAttempt, attempt,
				"kind", string(err.Kind),
				"error", err.Message,
			)
			return nil, err
		}

		delay := schedule.NextBackOff()
		if delay == backoff.Stop {
			return nil, err
		}
		logging.Warn(c.logger, "provider request retry",
			logging.FieldProvider, c.provider,
			logging.FieldAttempt, attempt,
			"max_retries", maxRetries,
			"delay_ms", delay.Milliseconds(),
			"kind", string(err.Kind),
		)
		c.metrics.RecordRetry(c.provider, delay)

		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			return nil, Classify(sleepErr, c.provider)
		}
	}
}

func (c *Client) attempt(ctx context.Context, rawURL string, headers map[string]string, timeout time.Duration) ([]byte, *Error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, Classify(err, c.provider)
		}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: fmt.Sprintf("build request: %v", err), Provider: c.provider, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		classified := Classify(err, c.provider)
		c.metrics.RecordProviderAttempt(c.provider, c.now().Sub(start), classified)
		return nil, classified
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.CopyN(io.Discard, resp.Body, maxDrainBytes)
		if resp.StatusCode == http.StatusTooManyRequests {
			c.metrics.RecordRateLimit(c.provider, parseRetryAfter(resp.Header.Get("Retry-After")))
		}
		statusErr := httpStatusError(c.provider, rawURL, resp.StatusCode, http.StatusText(resp.StatusCode))
		c.metrics.RecordProviderAttempt(c.provider, c.now().Sub(start), statusErr)
		return nil, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		classified := Classify(err, c.provider)
		c.metrics.RecordProviderAttempt(c.provider, c.now().Sub(start), classified)
		return nil, classified
	}
	c.metrics.RecordProviderAttempt(c.provider, c.now().Sub(start), nil)
	return body, nil
}

func resolveMaxRetries(n int) int {
	switch {
	case n < 0:
		return 0
	case n == 0:
		return DefaultMaxRetries
	default:
		return n
	}
}

// exponentialSchedule yields 300ms, 600ms, 1200ms, ... without jitter.
func exponentialSchedule() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = BaseBackoff
	b.Multiplier = backoffMultiplier
	b.RandomizationFactor = 0
	b.MaxInterval = maxBackoff
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if when, err := http.ParseTime(value); err == nil {
		if d := time.Until(when); d > 0 {
			return d
		}
	}
	return 0
}
