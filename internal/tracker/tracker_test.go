package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
	"github.com/preston-bernstein/wager-tracker/internal/domain/wagers"
	"github.com/preston-bernstein/wager-tracker/internal/metrics"
	"github.com/preston-bernstein/wager-tracker/internal/providers/footballdata"
	"github.com/preston-bernstein/wager-tracker/internal/providers/thesportsdb"
	"github.com/preston-bernstein/wager-tracker/internal/teststubs"
)

var fixedNow = time.Date(2025, 12, 28, 22, 30, 0, 0, time.UTC)

func finished(provider, home, away string, h, a int) fixtures.Resolved {
	kickoff := time.Date(2025, 12, 28, 19, 45, 0, 0, time.UTC)
	return fixtures.NewResolved(provider, fixtures.Fixture{
		Provider:    provider,
		ID:          "1",
		Home:        home,
		Away:        away,
		Kickoff:     &kickoff,
		Status:      fixtures.StatusFinished,
		Score:       fixtures.NewScore(h, a),
		Competition: &fixtures.Competition{ID: "2019", Name: "Serie A"},
	}, 0.97)
}

func newTracker(res Resolver, slip []wagers.Wager, rec *metrics.Recorder) *Tracker {
	rome, _ := time.LoadLocation("Europe/Rome")
	tr := New(res, slip, Options{Location: rome, Metrics: rec, Now: func() time.Time { return fixedNow }})
	tr.newID = func() string { return "cycle-1" }
	return tr
}

func TestRunCycleBuildsOrderedRows(t *testing.T) {
	stub := &teststubs.StubResolver{Results: map[string]fixtures.Resolved{
		"Atalanta|Inter": finished(footballdata.ProviderName, "Atalanta BC", "FC Internazionale Milano", 1, 1),
		"Napoli|Bologna": fixtures.NewError(footballdata.ProviderName, fixtures.ResolveError{Kind: fixtures.ErrorTimeout, Message: "timed out", Provider: footballdata.ProviderName}),
	}}
	slip := []wagers.Wager{
		{Home: "Atalanta", Away: "Inter", Bet: wagers.BetGG},
		{Home: "Napoli", Away: "Bologna", Bet: wagers.Bet1},
		{Home: "Sunderland", Away: "Leeds", Bet: wagers.BetOver25},
	}

	report := newTracker(stub, slip, nil).RunCycle(context.Background(), "2025-12-28")

	if report.CycleID != "cycle-1" || report.Date != "2025-12-28" || !report.GeneratedAt.Equal(fixedNow) {
		t.Fatalf("unexpected header %+v", report)
	}
	if len(report.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(report.Rows))
	}

	first := report.Rows[0]
	if first.Match != "Atalanta - Inter" || first.Score != "1-1" || first.MatchStatus != "FINISHED" {
		t.Fatalf("unexpected first row %+v", first)
	}
	if first.BetStatus != wagers.StatusWin || first.Reason != "FINISHED" || first.Competition != "Serie A" {
		t.Fatalf("unexpected first row outcome %+v", first)
	}
	if first.Kickoff != "28/12/2025 20:45" {
		t.Fatalf("expected kickoff in Rome time, got %q", first.Kickoff)
	}

	second := report.Rows[1]
	if second.MatchStatus != "ERROR" || second.BetStatus != wagers.StatusPending || second.Reason != "ERROR:TIMEOUT" {
		t.Fatalf("unexpected error row %+v", second)
	}
	if second.Error == nil || second.Error.Kind != fixtures.ErrorTimeout || second.Score != "-" {
		t.Fatalf("expected error details on row, got %+v", second)
	}

	third := report.Rows[2]
	if third.MatchStatus != "NOT_FOUND" || third.BetStatus != wagers.StatusNotFound || third.Kickoff != "-" {
		t.Fatalf("unexpected not-found row %+v", third)
	}

	if report.AllSettled {
		t.Fatalf("report with a pending row must not be settled")
	}
}

func TestRunCycleSharesOneFreshCycle(t *testing.T) {
	stub := &teststubs.StubResolver{}
	slip := []wagers.Wager{
		{Home: "A", Away: "B", Bet: wagers.Bet1},
		{Home: "C", Away: "D", Bet: wagers.Bet1},
	}
	tr := newTracker(stub, slip, nil)

	tr.RunCycle(context.Background(), "2025-12-28")
	first := stub.Cycles()
	tr.RunCycle(context.Background(), "2025-12-28")
	all := stub.Cycles()

	if len(first) != 2 || first[0] != first[1] || first[0] == nil {
		t.Fatalf("expected both wagers to share one cycle, got %v", first)
	}
	if all[2] == first[0] || all[3] == first[0] {
		t.Fatalf("expected a new cycle per run")
	}
}

func TestRunCycleIsolatesPanics(t *testing.T) {
	stub := &teststubs.StubResolver{
		Results: map[string]fixtures.Resolved{"A|B": finished("p", "A", "B", 2, 0)},
		Panics:  map[string]bool{"C|D": true},
	}
	slip := []wagers.Wager{
		{Home: "A", Away: "B", Bet: wagers.Bet1},
		{Home: "C", Away: "D", Bet: wagers.Bet1},
	}

	report := newTracker(stub, slip, nil).RunCycle(context.Background(), "2025-12-28")

	if report.Rows[0].BetStatus != wagers.StatusWin {
		t.Fatalf("expected healthy wager to win, got %+v", report.Rows[0])
	}
	bad := report.Rows[1]
	if bad.MatchStatus != "ERROR" || bad.Error == nil || bad.Error.Kind != fixtures.ErrorUnknown {
		t.Fatalf("expected panic to become an UNKNOWN error row, got %+v", bad)
	}
}

func TestRunCycleAllSettled(t *testing.T) {
	stub := &teststubs.StubResolver{Results: map[string]fixtures.Resolved{
		"A|B": finished("p", "A", "B", 0, 2),
	}}
	slip := []wagers.Wager{
		{Home: "A", Away: "B", Bet: wagers.Bet1},
		{Home: "X", Away: "Y", Bet: wagers.Bet1},
	}

	report := newTracker(stub, slip, nil).RunCycle(context.Background(), "2025-12-28")

	if !report.AllSettled {
		t.Fatalf("expected LOSE and NOT_FOUND rows to settle the report: %+v", report.Rows)
	}
	counts := report.Counts()
	if counts[wagers.StatusLose] != 1 || counts[wagers.StatusNotFound] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestRunCycleDefaultsDateToToday(t *testing.T) {
	stub := &teststubs.StubResolver{}
	report := newTracker(stub, []wagers.Wager{{Home: "A", Away: "B", Bet: wagers.Bet1}}, nil).RunCycle(context.Background(), "")
	if report.Date != "2025-12-28" {
		t.Fatalf("expected today's date in Rome, got %s", report.Date)
	}
}

func TestRunCycleRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	stub := &teststubs.StubResolver{Panics: map[string]bool{"A|B": true}}

	newTracker(stub, []wagers.Wager{{Home: "A", Away: "B", Bet: wagers.Bet1}}, rec).RunCycle(context.Background(), "2025-12-28")

	snap := rec.Cycles()
	if snap.Cycles != 1 || snap.LastWagers != 1 || snap.LastFailures != 1 {
		t.Fatalf("unexpected cycle metrics %+v", snap)
	}
}

func TestCompetitionLabel(t *testing.T) {
	cases := []struct {
		name     string
		resolved fixtures.Resolved
		want     string
	}{
		{
			name:     "fixture competition name",
			resolved: fixtures.NewResolved("p", fixtures.Fixture{Competition: &fixtures.Competition{Name: "Serie A"}}, 1),
			want:     "Serie A",
		},
		{
			name:     "football-data id only",
			resolved: fixtures.NewResolved(footballdata.ProviderName, fixtures.Fixture{Competition: &fixtures.Competition{ID: "2021"}}, 1),
			want:     "Premier League",
		},
		{
			name:     "fallback without league",
			resolved: fixtures.NewResolved(thesportsdb.ProviderName, fixtures.Fixture{}, 1),
			want:     "TheSportsDB",
		},
		{
			name:     "not found",
			resolved: fixtures.NewNotFound(footballdata.ProviderName),
			want:     footballdata.ProviderName,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := competitionLabel(tc.resolved); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
