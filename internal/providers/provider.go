package providers

import (
	"context"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
	"github.com/preston-bernstein/wager-tracker/internal/transport"
)

// Provider is the capability every upstream adapter shares.
type Provider interface {
	Name() string
	// CanUse reports whether the adapter is configured and usable now.
	CanUse() bool
}

// DateLister lists every fixture a provider knows for one YYYY-MM-DD date.
type DateLister interface {
	Provider
	ListByDate(ctx context.Context, date string, cycle *transport.Cycle) ([]fixtures.Fixture, error)
}

// EventSearcher finds one fixture by team names on a date, or nil when no
// candidate is confident enough.
type EventSearcher interface {
	Provider
	SearchAndLookup(ctx context.Context, home, away, date string, cycle *transport.Cycle) (*fixtures.Fixture, error)
}

// JSONFetcher is the slice of the transport client adapters depend on.
type JSONFetcher interface {
	FetchJSON(ctx context.Context, url string, opts transport.Options, dest any) error
}

// CacheKey joins a provider operation and its inputs into a cycle cache key.
func CacheKey(provider, operation string, parts ...string) string {
	key := provider + ":" + operation
	for _, p := range parts {
		key += ":" + p
	}
	return key
}
