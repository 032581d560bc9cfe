package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/config"
	"github.com/preston-bernstein/wager-tracker/internal/domain/wagers"
	"github.com/preston-bernstein/wager-tracker/internal/metrics"
	"github.com/preston-bernstein/wager-tracker/internal/providers"
	"github.com/preston-bernstein/wager-tracker/internal/providers/fixture"
	"github.com/preston-bernstein/wager-tracker/internal/providers/footballdata"
	"github.com/preston-bernstein/wager-tracker/internal/providers/thesportsdb"
	"github.com/preston-bernstein/wager-tracker/internal/resolver"
	"github.com/preston-bernstein/wager-tracker/internal/timeutil"
	"github.com/preston-bernstein/wager-tracker/internal/tracker"
	"github.com/preston-bernstein/wager-tracker/internal/transport"
)

// providerFactory assembles adapters on top of shared transport clients
// (rate limit, retry, metrics).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) transportClient(provider string, timeout time.Duration, perMinute int) *transport.Client {
	if timeout <= 0 {
		timeout = transport.DefaultTimeout
	}
	return transport.NewClient(transport.Config{
		HTTPClient: &http.Client{Timeout: 2 * timeout},
		Provider:   provider,
		Limiter:    transport.PerMinute(perMinute),
		Logger:     f.logger,
		Metrics:    f.metrics,
	})
}

func (f providerFactory) buildPrimary(cfg config.Config) providers.DateLister {
	switch name := normalizeProviderName(cfg.Providers.Primary); name {
	case fixture.ProviderName:
		return fixture.New()
	case footballdata.ProviderName:
		fd := cfg.Providers.FootballData
		return footballdata.NewClient(footballdata.Config{
			BaseURL:      fd.BaseURL,
			Token:        fd.Token,
			Competitions: footballdata.ParseCompetitions(fd.Competitions),
			Timeout:      cfg.Resolve.Timeout,
			MaxRetries:   transportRetries(cfg.Resolve.MaxRetries),
			Fetcher:      f.transportClient(footballdata.ProviderName, cfg.Resolve.Timeout, fd.RatePerMinute),
			Logger:       f.logger,
		})
	default:
		if f.logger != nil {
			f.logger.Warn("unknown primary provider, falling back to fixture", slog.String("provider", name))
		}
		return fixture.New()
	}
}

func (f providerFactory) buildFallback(cfg config.Config) providers.EventSearcher {
	if !cfg.Providers.FallbackEnabled {
		return nil
	}
	tsd := cfg.Providers.TheSportsDB
	return thesportsdb.NewClient(thesportsdb.Config{
		BaseURL:    tsd.BaseURL,
		APIKey:     tsd.APIKey,
		Timeout:    cfg.Resolve.Timeout,
		MaxRetries: transportRetries(cfg.Resolve.MaxRetries),
		Fetcher:    f.transportClient(thesportsdb.ProviderName, cfg.Resolve.Timeout, 0),
		Logger:     f.logger,
	})
}

func (f providerFactory) buildResolver(cfg config.Config) *resolver.Resolver {
	return resolver.New(f.buildPrimary(cfg), f.buildFallback(cfg), resolver.Options{
		Window:  cfg.Resolve.DateWindow,
		Logger:  f.logger,
		Metrics: f.metrics,
	})
}

// NewTracker wires providers, resolver and tracker from configuration. It is
// shared by the HTTP service and the one-shot CLI.
func NewTracker(cfg config.Config, slip []wagers.Wager, logger *slog.Logger, recorder *metrics.Recorder) (*tracker.Tracker, error) {
	loc, err := timeutil.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	res := newProviderFactory(logger, recorder).buildResolver(cfg)
	return tracker.New(res, slip, tracker.Options{
		Location: loc,
		Logger:   logger,
		Metrics:  recorder,
	}), nil
}

// transportRetries maps the configured count onto transport semantics, where
// zero selects the default and a negative value disables retries.
func transportRetries(configured int) int {
	if configured == 0 {
		return -1
	}
	return configured
}
