package testutil

import (
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
	"github.com/preston-bernstein/wager-tracker/internal/domain/wagers"
	"github.com/preston-bernstein/wager-tracker/internal/tracker"
)

// SampleFixture returns a finished fixture with the provided id and score.
func SampleFixture(id string, home, away int) fixtures.Fixture {
	kickoff := time.Date(2025, 12, 28, 19, 45, 0, 0, time.UTC)
	return fixtures.Fixture{
		Provider:    "test",
		ID:          id,
		Home:        "Home FC",
		Away:        "Away FC",
		Kickoff:     &kickoff,
		Status:      fixtures.StatusFinished,
		Score:       fixtures.NewScore(home, away),
		Competition: &fixtures.Competition{ID: "2019", Name: "Serie A"},
	}
}

// SampleReport builds a report with one settled and one pending row.
func SampleReport(cycleID string) tracker.Report {
	return tracker.Report{
		CycleID:     cycleID,
		Date:        "2025-12-28",
		GeneratedAt: time.Date(2025, 12, 28, 22, 0, 0, 0, time.UTC),
		Rows: []tracker.Row{
			{
				Match:       "Home - Away",
				Kickoff:     "28/12/2025 20:45",
				Score:       "2-1",
				MatchStatus: "FINISHED",
				Bet:         wagers.Bet1.Label(),
				BetKind:     wagers.Bet1,
				BetStatus:   wagers.StatusWin,
				Reason:      "FINISHED",
				Provider:    "test",
				Competition: "Serie A",
				Confidence:  1,
			},
			{
				Match:       "Other - Side",
				Kickoff:     "-",
				Score:       "-",
				MatchStatus: "ERROR",
				Bet:         wagers.BetGG.Label(),
				BetKind:     wagers.BetGG,
				BetStatus:   wagers.StatusPending,
				Reason:      "ERROR:HTTP",
				Provider:    "test",
				Competition: "test",
				Error:       &fixtures.ResolveError{Kind: fixtures.ErrorHTTP, Message: "HTTP 503 Service Unavailable", Provider: "test"},
			},
		},
	}
}
