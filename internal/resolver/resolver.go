// Package resolver turns a wager's team pair and date into one fixture, a
// NOT_FOUND, or a classified error, trying the primary lister before the
// fallback searcher.
package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
	"github.com/preston-bernstein/wager-tracker/internal/logging"
	"github.com/preston-bernstein/wager-tracker/internal/matching"
	"github.com/preston-bernstein/wager-tracker/internal/metrics"
	"github.com/preston-bernstein/wager-tracker/internal/providers"
	"github.com/preston-bernstein/wager-tracker/internal/timeutil"
	"github.com/preston-bernstein/wager-tracker/internal/transport"
)

// Acceptance policy. The fallback search gate lives with the fallback
// adapter as thesportsdb.SearchThreshold.
const (
	PrimaryAcceptThreshold  = 0.78
	FallbackAcceptThreshold = 0.82
)

const noProvider = "none"

// Options tune a Resolver.
type Options struct {
	// Window widens the primary search to [date-Window, date+Window] days.
	Window     int
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
	Similarity func(a, b string) float64
}

// Resolver is stateless between calls and safe for concurrent use.
type Resolver struct {
	primary    providers.DateLister
	fallback   providers.EventSearcher
	window     int
	logger     *slog.Logger
	metrics    *metrics.Recorder
	similarity func(a, b string) float64
}

// New builds a Resolver. Either adapter may be nil.
func New(primary providers.DateLister, fallback providers.EventSearcher, opts Options) *Resolver {
	window := opts.Window
	if window < 0 {
		window = 0
	}
	sim := opts.Similarity
	if sim == nil {
		sim = matching.Similarity
	}
	return &Resolver{
		primary:    primary,
		fallback:   fallback,
		window:     window,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		similarity: sim,
	}
}

// Resolve never fails: every provider failure comes back as data.
func (r *Resolver) Resolve(ctx context.Context, home, away, date string, cycle *transport.Cycle) fixtures.Resolved {
	logger := logging.FromContext(ctx, r.logger)
	match := home + " - " + away
	var lastErr *fixtures.ResolveError

	if r.primaryUsable() {
		best, confidence, err := r.tryPrimary(ctx, home, away, date, cycle)
		switch {
		case err != nil:
			lastErr = classify(err, r.primary.Name())
			logging.Warn(logger, "primary provider failed",
				logging.FieldProvider, r.primary.Name(),
				logging.FieldMatch, match,
				logging.FieldDate, date,
				"kind", string(lastErr.Kind),
				"error", lastErr.Message,
			)
		case best != nil:
			return r.accept(logger, r.primary.Name(), *best, confidence, match)
		}
	}

	if r.fallback != nil {
		candidate, err := r.fallback.SearchAndLookup(ctx, home, away, date, cycle)
		switch {
		case err != nil:
			lastErr = classify(err, r.fallback.Name())
			logging.Warn(logger, "fallback provider failed",
				logging.FieldProvider, r.fallback.Name(),
				logging.FieldMatch, match,
				logging.FieldDate, date,
				"kind", string(lastErr.Kind),
				"error", lastErr.Message,
			)
		case candidate != nil:
			confidence := r.confidence(*candidate, home, away)
			if confidence >= FallbackAcceptThreshold {
				return r.accept(logger, r.fallback.Name(), *candidate, confidence, match)
			}
			logging.Debug(logger, "fallback candidate below threshold",
				logging.FieldProvider, r.fallback.Name(),
				logging.FieldMatch, match,
				logging.FieldConfidence, confidence,
			)
		}
	}

	return r.decide(logger, lastErr, match)
}

// Confidence scores a fixture against the requested pair in whichever
// orientation fits better.
func Confidence(f fixtures.Fixture, home, away string) float64 {
	return orientedScore(matching.Similarity, f, home, away)
}

func (r *Resolver) confidence(f fixtures.Fixture, home, away string) float64 {
	return orientedScore(r.similarity, f, home, away)
}

func orientedScore(sim func(a, b string) float64, f fixtures.Fixture, home, away string) float64 {
	direct := (sim(home, f.Home) + sim(away, f.Away)) / 2
	swapped := (sim(home, f.Away) + sim(away, f.Home)) / 2
	if swapped > direct {
		return swapped
	}
	return direct
}

func (r *Resolver) tryPrimary(ctx context.Context, home, away, date string, cycle *transport.Cycle) (*fixtures.Fixture, float64, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, 0, &transport.Error{
			Kind:     transport.KindUnknown,
			Message:  fmt.Sprintf("invalid target date %q", date),
			Provider: r.primary.Name(),
			Err:      err,
		}
	}

	seen := make(map[string]struct{})
	candidates := make([]fixtures.Fixture, 0)
	for offset := -r.window; offset <= r.window; offset++ {
		day, err := timeutil.ShiftDate(date, offset)
		if err != nil {
			return nil, 0, err
		}
		list, err := r.primary.ListByDate(ctx, day, cycle)
		if err != nil {
			return nil, 0, err
		}
		for _, f := range list {
			key := f.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			candidates = append(candidates, f)
		}
	}

	var (
		best      *fixtures.Fixture
		bestScore float64
	)
	for i := range candidates {
		score := r.confidence(candidates[i], home, away)
		if best == nil || score > bestScore {
			best, bestScore = &candidates[i], score
		}
	}
	if best == nil || bestScore < PrimaryAcceptThreshold {
		return nil, bestScore, nil
	}
	return best, bestScore, nil
}

func (r *Resolver) accept(logger *slog.Logger, provider string, f fixtures.Fixture, confidence float64, match string) fixtures.Resolved {
	logging.Debug(logger, "fixture resolved",
		logging.FieldProvider, provider,
		logging.FieldMatch, match,
		logging.FieldConfidence, confidence,
		"fixture_id", f.ID,
	)
	r.metrics.RecordResolution(provider, string(fixtures.OutcomeResolved), confidence)
	return fixtures.NewResolved(provider, f, confidence)
}

func (r *Resolver) decide(logger *slog.Logger, lastErr *fixtures.ResolveError, match string) fixtures.Resolved {
	if lastErr != nil {
		provider := lastErr.Provider
		if provider == "" {
			provider = r.usableProvider()
		}
		r.metrics.RecordResolution(provider, string(fixtures.OutcomeError), 0)
		return fixtures.NewError(provider, *lastErr)
	}

	provider := r.usableProvider()
	logging.Debug(logger, "fixture not found", logging.FieldProvider, provider, logging.FieldMatch, match)
	r.metrics.RecordResolution(provider, string(fixtures.OutcomeNotFound), 0)
	return fixtures.NewNotFound(provider)
}

func (r *Resolver) primaryUsable() bool {
	return r.primary != nil && r.primary.CanUse()
}

func (r *Resolver) usableProvider() string {
	switch {
	case r.primaryUsable():
		return r.primary.Name()
	case r.fallback != nil:
		return r.fallback.Name()
	default:
		return noProvider
	}
}

func classify(err error, provider string) *fixtures.ResolveError {
	terr := transport.Classify(err, provider)
	return &fixtures.ResolveError{
		Kind:     fixtures.ErrorKind(terr.Kind),
		Message:  terr.Message,
		Provider: terr.Provider,
	}
}
