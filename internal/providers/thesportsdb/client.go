package thesportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
	"github.com/preston-bernstein/wager-tracker/internal/matching"
	"github.com/preston-bernstein/wager-tracker/internal/providers"
	"github.com/preston-bernstein/wager-tracker/internal/transport"
)

// Config controls how the TheSportsDB client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	Fetcher    providers.JSONFetcher
	Logger     *slog.Logger
	Similarity func(a, b string) float64
}

// Client searches TheSportsDB by team pair and looks up the best hit.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	maxRetries int
	fetcher    providers.JSONFetcher
	logger     *slog.Logger
	similarity func(a, b string) float64
}

// NewClient constructs a TheSportsDB client with the provided configuration.
func NewClient(cfg Config) *Client {
	sim := cfg.Similarity
	if sim == nil {
		sim = matching.Similarity
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     resolveAPIKey(cfg.APIKey),
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		fetcher:    resolveFetcher(cfg),
		logger:     cfg.Logger,
		similarity: sim,
	}
}

func (c *Client) Name() string { return ProviderName }

// CanUse is always true; the public key works without configuration.
func (c *Client) CanUse() bool { return true }

// SearchAndLookup searches events for the pair on date, keeps same-day hits,
// and looks up the best one when it scores at least SearchThreshold.
func (c *Client) SearchAndLookup(ctx context.Context, home, away, date string, cycle *transport.Cycle) (*fixtures.Fixture, error) {
	query := matching.QueryToken(home) + "_vs_" + matching.QueryToken(away)

	var search searchResponse
	if err := c.fetch(ctx, c.searchURL(query, date), providers.CacheKey(ProviderName, "search", query, date), cycle, &search); err != nil {
		return nil, err
	}

	best, score, ok := c.bestCandidate(search.Event, home, away, date)
	if !ok {
		providers.LogWithProvider(ctx, c.logger, slog.LevelDebug, ProviderName, "no same-day search hit", "query", query, "date", date)
		return nil, nil
	}
	if score < SearchThreshold {
		providers.LogWithProvider(ctx, c.logger, slog.LevelDebug, ProviderName, "search hit below threshold",
			"event", best.StrEvent, "confidence", score)
		return nil, nil
	}

	var lookup lookupResponse
	if err := c.fetch(ctx, c.lookupURL(best.IDEvent), providers.CacheKey(ProviderName, "lookup", best.IDEvent), cycle, &lookup); err != nil {
		return nil, err
	}
	if len(lookup.Events) == 0 {
		return nil, nil
	}

	raw := lookup.Events[0]
	var detail eventDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, &transport.Error{
			Kind:     transport.KindUnknown,
			Message:  fmt.Sprintf("decode event %s: %v", best.IDEvent, err),
			Provider: ProviderName,
			Err:      err,
		}
	}
	fixture := mapEvent(detail, raw)
	return &fixture, nil
}

func (c *Client) bestCandidate(events []searchEvent, home, away, date string) (searchEvent, float64, bool) {
	var (
		best  searchEvent
		score float64
		found bool
	)
	for _, ev := range events {
		if ev.DateEvent != date {
			continue
		}
		h, a, ok := matching.SplitEventTitle(ev.StrEvent)
		if !ok {
			continue
		}
		s := (c.similarity(home, h) + c.similarity(away, a)) / 2
		if !found || s > score {
			best, score, found = ev, s, true
		}
	}
	return best, score, found
}

func (c *Client) fetch(ctx context.Context, rawURL, cacheKey string, cycle *transport.Cycle, dest any) error {
	return c.fetcher.FetchJSON(ctx, rawURL, transport.Options{
		Timeout:    c.timeout,
		MaxRetries: c.maxRetries,
		CacheKey:   cacheKey,
		Cycle:      cycle,
	}, dest)
}

func (c *Client) searchURL(query, date string) string {
	q := url.Values{}
	q.Set("e", query)
	q.Set("d", date)
	return fmt.Sprintf("%s/%s/searchevents.php?%s", c.baseURL, url.PathEscape(c.apiKey), q.Encode())
}

func (c *Client) lookupURL(id string) string {
	return fmt.Sprintf("%s/%s/lookupevent.php?id=%s", c.baseURL, url.PathEscape(c.apiKey), url.QueryEscape(id))
}
