package server

import (
	"strings"

	"github.com/preston-bernstein/wager-tracker/internal/providers/fixture"
	"github.com/preston-bernstein/wager-tracker/internal/providers/footballdata"
)

// normalizeProviderName maps the spellings accepted in PRIMARY_PROVIDER onto
// canonical provider names.
func normalizeProviderName(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "football-data", "footballdata", "football_data", "fd":
		return footballdata.ProviderName
	case "fixture", "fixtures", "offline":
		return fixture.ProviderName
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}
