package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
	"github.com/preston-bernstein/wager-tracker/internal/providers"
	"github.com/preston-bernstein/wager-tracker/internal/transport"
)

// Config controls how the football-data client reaches the upstream API.
type Config struct {
	BaseURL      string
	Token        string
	Competitions []string
	Timeout      time.Duration
	MaxRetries   int
	Fetcher      providers.JSONFetcher
	Logger       *slog.Logger
}

// Client lists fixtures per competition and date from football-data.org.
type Client struct {
	baseURL      string
	token        string
	competitions []string
	timeout      time.Duration
	maxRetries   int
	fetcher      providers.JSONFetcher
	logger       *slog.Logger
}

// NewClient constructs a football-data client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:      normalizeBaseURL(cfg.BaseURL),
		token:        strings.TrimSpace(cfg.Token),
		competitions: resolveCompetitions(cfg.Competitions),
		timeout:      cfg.Timeout,
		maxRetries:   cfg.MaxRetries,
		fetcher:      resolveFetcher(cfg),
		logger:       cfg.Logger,
	}
}

func (c *Client) Name() string { return ProviderName }

// CanUse is true once an API token is configured.
func (c *Client) CanUse() bool { return c.token != "" }

// Competitions returns the competition ids queried per date.
func (c *Client) Competitions() []string {
	return append([]string(nil), c.competitions...)
}

// ListByDate fetches every configured competition for one date. Any
// competition failing fails the whole listing.
func (c *Client) ListByDate(ctx context.Context, date string, cycle *transport.Cycle) ([]fixtures.Fixture, error) {
	if !c.CanUse() {
		return nil, fmt.Errorf("%s: %w", ProviderName, providers.ErrProviderUnavailable)
	}

	out := make([]fixtures.Fixture, 0)
	for _, comp := range c.competitions {
		var payload matchesResponse
		err := c.fetcher.FetchJSON(ctx, c.matchesURL(comp, date), transport.Options{
			Headers:    map[string]string{authHeader: c.token},
			Timeout:    c.timeout,
			MaxRetries: c.maxRetries,
			CacheKey:   providers.CacheKey(ProviderName, "comp", comp, date),
			Cycle:      cycle,
		}, &payload)
		if err != nil {
			return nil, err
		}

		competition := fixtures.Competition{ID: comp, Name: CompetitionName(comp)}
		if payload.Competition != nil && payload.Competition.Name != "" && strconv.Itoa(payload.Competition.ID) == comp {
			competition.Name = payload.Competition.Name
		}

		for _, raw := range payload.Matches {
			var m matchResponse
			if err := json.Unmarshal(raw, &m); err != nil {
				providers.LogWithProvider(ctx, c.logger, slog.LevelWarn, ProviderName, "skipping undecodable match", "competition", comp, "error", err)
				continue
			}
			out = append(out, mapMatch(m, raw, competition))
		}
	}

	providers.LogWithProvider(ctx, c.logger, slog.LevelDebug, ProviderName, "listed fixtures", "date", date, "count", len(out))
	return out, nil
}

func (c *Client) matchesURL(comp, date string) string {
	q := url.Values{}
	q.Set("dateFrom", date)
	q.Set("dateTo", date)
	return fmt.Sprintf("%s/competitions/%s/matches?%s", c.baseURL, url.PathEscape(comp), q.Encode())
}
