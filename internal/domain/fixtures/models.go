package fixtures

import (
	"encoding/json"
	"strings"
	"time"
)

// Status is the provider-agnostic lifecycle state of a fixture.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
	StatusPostponed Status = "postponed"
	StatusCanceled  Status = "canceled"
	StatusUnknown   Status = "unknown"
)

// Score holds goals per side. Either side may be unknown.
type Score struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// NewScore builds a complete score.
func NewScore(home, away int) Score {
	return Score{Home: &home, Away: &away}
}

// Complete reports whether both sides are known.
func (s Score) Complete() bool {
	return s.Home != nil && s.Away != nil
}

// Competition identifies the league or cup a fixture belongs to.
type Competition struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Fixture is a single match as reported by one provider.
type Fixture struct {
	Provider    string          `json:"provider"`
	ID          string          `json:"id"`
	Home        string          `json:"home"`
	Away        string          `json:"away"`
	Kickoff     *time.Time      `json:"kickoff,omitempty"`
	Status      Status          `json:"status"`
	Score       Score           `json:"score"`
	Competition *Competition    `json:"competition,omitempty"`
	Raw         json.RawMessage `json:"-"`
}

// Key identifies a fixture uniquely across providers.
func (f Fixture) Key() string {
	return f.Provider + ":" + f.ID
}

// MatchStatusCode renders a status as the upper-case code used in reports.
func MatchStatusCode(s Status) string {
	switch s {
	case StatusScheduled, StatusLive, StatusFinished, StatusPostponed, StatusCanceled:
		return strings.ToUpper(string(s))
	default:
		return "UNKNOWN"
	}
}
