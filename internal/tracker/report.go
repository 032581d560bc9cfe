package tracker

import (
	"strconv"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
	"github.com/preston-bernstein/wager-tracker/internal/domain/wagers"
	"github.com/preston-bernstein/wager-tracker/internal/providers/footballdata"
	"github.com/preston-bernstein/wager-tracker/internal/providers/thesportsdb"
	"github.com/preston-bernstein/wager-tracker/internal/timeutil"
)

// Report is the outcome of one refresh cycle.
type Report struct {
	CycleID     string    `json:"cycleId"`
	Date        string    `json:"date"`
	GeneratedAt time.Time `json:"generatedAt"`
	Rows        []Row     `json:"rows"`
	AllSettled  bool      `json:"allSettled"`
}

// Row is one wager as rendered in a report.
type Row struct {
	Match       string                 `json:"match"`
	Kickoff     string                 `json:"kickoff"`
	Score       string                 `json:"score"`
	ScoreValue  *fixtures.Score        `json:"scoreValue,omitempty"`
	MatchStatus string                 `json:"matchStatus"`
	Bet         string                 `json:"bet"`
	BetKind     wagers.BetKind         `json:"betKind"`
	BetStatus   wagers.BetStatus       `json:"betStatus"`
	Reason      string                 `json:"reason"`
	Provider    string                 `json:"provider"`
	Competition string                 `json:"competition"`
	Confidence  float64                `json:"confidence"`
	FixtureID   string                 `json:"fixtureId,omitempty"`
	Error       *fixtures.ResolveError `json:"error,omitempty"`
}

// Settled mirrors the row's bet outcome.
func (r Row) Settled() bool {
	return wagers.Outcome{Status: r.BetStatus}.Settled()
}

// Counts tallies rows per bet status.
func (r Report) Counts() map[wagers.BetStatus]int {
	out := make(map[wagers.BetStatus]int, 4)
	for _, row := range r.Rows {
		out[row.BetStatus]++
	}
	return out
}

func buildRow(w wagers.Wager, resolved fixtures.Resolved, loc *time.Location) Row {
	outcome := wagers.Evaluate(w, resolved)
	row := Row{
		Match:      w.Match(),
		Kickoff:    timeutil.FormatKickoff(nil, loc),
		Score:      "-",
		Bet:        w.Bet.Label(),
		BetKind:    w.Bet,
		BetStatus:  outcome.Status,
		Reason:     outcome.Reason,
		Provider:   resolved.Provider,
		Confidence: resolved.Confidence,
		Error:      resolved.Err,
	}

	switch {
	case resolved.Err != nil:
		row.MatchStatus = string(fixtures.OutcomeError)
	case resolved.Fixture == nil:
		row.MatchStatus = string(fixtures.OutcomeNotFound)
	default:
		f := resolved.Fixture
		row.MatchStatus = fixtures.MatchStatusCode(f.Status)
		row.Kickoff = timeutil.FormatKickoff(f.Kickoff, loc)
		row.FixtureID = f.ID
		if f.Score.Complete() {
			score := f.Score
			row.ScoreValue = &score
			row.Score = strconv.Itoa(*score.Home) + "-" + strconv.Itoa(*score.Away)
		}
	}
	row.Competition = competitionLabel(resolved)
	return row
}

func competitionLabel(resolved fixtures.Resolved) string {
	f := resolved.Fixture
	if f != nil && f.Competition != nil {
		if f.Competition.Name != "" {
			return f.Competition.Name
		}
		if resolved.Provider == footballdata.ProviderName && f.Competition.ID != "" {
			return footballdata.CompetitionName(f.Competition.ID)
		}
	}
	if f != nil && resolved.Provider == thesportsdb.ProviderName {
		return "TheSportsDB"
	}
	return resolved.Provider
}
