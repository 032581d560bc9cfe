package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	retries         int
	rateLimitHits   int
	cacheHits       int
	cacheMisses     int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
	outcomes        map[string]int
}

type cycleStats struct {
	cycles       int
	lastDuration time.Duration
	lastWagers   int
	lastFailures int
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// resolutions and refresh cycles. A nil Recorder is valid and records nothing.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*providerStats
	cycles cycleStats
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt counts one outbound attempt and stores its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(provider, func(stats *providerStats) {
		stats.calls++
		stats.lastCallLatency = duration
		if err != nil {
			stats.errors++
		}
	})
	r.otel.recordProviderAttempt(provider, duration, err)
}

// RecordRetry counts a scheduled retry and the backoff chosen for it.
func (r *Recorder) RecordRetry(provider string, delay time.Duration) {
	if r == nil {
		return
	}
	r.update(provider, func(stats *providerStats) { stats.retries++ })
	r.otel.recordRetry(provider, delay)
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.update(provider, func(stats *providerStats) {
		stats.rateLimitHits++
		if retryAfter > 0 {
			stats.lastRetryAfter = retryAfter
		}
	})
	r.otel.recordRateLimit(provider, retryAfter)
}

// RecordCacheLookup counts a cycle cache lookup as a hit or a miss.
func (r *Recorder) RecordCacheLookup(provider string, hit bool) {
	if r == nil {
		return
	}
	r.update(provider, func(stats *providerStats) {
		if hit {
			stats.cacheHits++
		} else {
			stats.cacheMisses++
		}
	})
	r.otel.recordCacheLookup(provider, hit)
}

// RecordResolution counts a resolver outcome attributed to provider.
func (r *Recorder) RecordResolution(provider, outcome string, confidence float64) {
	if r == nil {
		return
	}
	r.update(provider, func(stats *providerStats) {
		if stats.outcomes == nil {
			stats.outcomes = make(map[string]int)
		}
		stats.outcomes[outcome]++
	})
	r.otel.recordResolution(provider, outcome, confidence)
}

// RecordCycle stores the shape of the last refresh cycle.
func (r *Recorder) RecordCycle(duration time.Duration, wagers, failures int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.cycles.cycles++
	r.cycles.lastDuration = duration
	r.cycles.lastWagers = wagers
	r.cycles.lastFailures = failures
	r.mu.Unlock()
	r.otel.recordCycle(duration, failures)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// Retries returns the number of retries scheduled for a provider.
func (r *Recorder) Retries(provider string) int {
	return r.Snapshot(provider).Retries
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Resolutions returns how often provider was credited with outcome.
func (r *Recorder) Resolutions(provider, outcome string) int {
	return r.Snapshot(provider).Outcomes[outcome]
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	Retries         int
	RateLimitHits   int
	CacheHits       int
	CacheMisses     int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
	Outcomes        map[string]int
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	outcomes := make(map[string]int, len(stats.outcomes))
	for k, v := range stats.outcomes {
		outcomes[k] = v
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Retries:         stats.retries,
		RateLimitHits:   stats.rateLimitHits,
		CacheHits:       stats.cacheHits,
		CacheMisses:     stats.cacheMisses,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
		Outcomes:        outcomes,
	}
}

// CycleSnapshot summarises refresh cycles seen so far.
type CycleSnapshot struct {
	Cycles       int
	LastDuration time.Duration
	LastWagers   int
	LastFailures int
}

func (r *Recorder) Cycles() CycleSnapshot {
	if r == nil {
		return CycleSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return CycleSnapshot{
		Cycles:       r.cycles.cycles,
		LastDuration: r.cycles.lastDuration,
		LastWagers:   r.cycles.lastWagers,
		LastFailures: r.cycles.lastFailures,
	}
}

func (r *Recorder) update(provider string, fn func(*providerStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	fn(stats)
}
