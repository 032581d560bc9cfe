package footballdata

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

// ParseCompetitions splits a comma or whitespace separated id list.
func ParseCompetitions(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return append([]string(nil), DefaultCompetitions...)
	}
	return fields
}

func resolveCompetitions(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultCompetitions...)
	}
	return out
}
