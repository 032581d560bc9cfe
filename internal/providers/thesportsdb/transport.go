package thesportsdb

import (
	"net/http"
	"strings"

	"github.com/preston-bernstein/wager-tracker/internal/providers"
	"github.com/preston-bernstein/wager-tracker/internal/transport"
)

func resolveFetcher(cfg Config) providers.JSONFetcher {
	if cfg.Fetcher != nil {
		return cfg.Fetcher
	}
	return transport.NewClient(transport.Config{
		HTTPClient: &http.Client{Timeout: 2 * defaultHTTPTimeout},
		Provider:   ProviderName,
		Logger:     cfg.Logger,
	})
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveAPIKey(key string) string {
	if key = strings.TrimSpace(key); key != "" {
		return key
	}
	return defaultAPIKey
}
