package thesportsdb

import "time"

const (
	ProviderName       = "thesportsdb"
	defaultBaseURL     = "https://www.thesportsdb.com/api/v1/json"
	defaultAPIKey      = "123"
	defaultHTTPTimeout = 10 * time.Second

	// SearchThreshold gates which search hit is worth a detail lookup.
	SearchThreshold = 0.82
)
