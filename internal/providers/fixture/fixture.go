package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
	"github.com/preston-bernstein/wager-tracker/internal/timeutil"
	"github.com/preston-bernstein/wager-tracker/internal/transport"
)

const ProviderName = "fixture"

const matchLength = 2 * time.Hour

type entry struct {
	home, away  string
	competition fixtures.Competition
	kickoff     time.Duration
	home90      int
	away90      int
	status      fixtures.Status
}

var slate = []entry{
	{"US Cremonese", "SSC Napoli", seriea, 14 * time.Hour, 0, 2, ""},
	{"Sunderland AFC", "Leeds United FC", premier, 15 * time.Hour, 1, 1, ""},
	{"Crystal Palace FC", "Tottenham Hotspur FC", premier, 17*time.Hour + 30*time.Minute, 2, 2, ""},
	{"Bologna FC 1909", "US Sassuolo Calcio", seriea, 17 * time.Hour, 3, 1, ""},
	{"Algeria", "Burkina Faso", afcon, 19 * time.Hour, 1, 0, ""},
	{"Atalanta BC", "FC Internazionale Milano", seriea, 19*time.Hour + 45*time.Minute, 1, 1, ""},
	{"AC Milan", "Udinese Calcio", seriea, 11*time.Hour + 30*time.Minute, 2, 0, ""},
	{"Genoa CFC", "Juventus FC", seriea, 20 * time.Hour, 0, 1, ""},
	{"Empoli FC", "Cagliari Calcio", seriea, 13 * time.Hour, 0, 0, fixtures.StatusPostponed},
	{"ACF Fiorentina", "SS Lazio", seriea, 16 * time.Hour, 2, 3, ""},
}

var (
	seriea  = fixtures.Competition{ID: "2019", Name: "Serie A"}
	premier = fixtures.Competition{ID: "2021", Name: "Premier League"}
	afcon   = fixtures.Competition{ID: "afcon", Name: "Africa Cup of Nations"}
)

// Provider returns a static slate of fixtures useful for local runs and
// tests. Status and score follow the clock: scheduled before kickoff, live
// for two hours, finished afterwards.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// NewWithClock creates a fixture provider pinned to a clock.
func NewWithClock(now func() time.Time) *Provider {
	if now == nil {
		now = time.Now
	}
	return &Provider{now: now}
}

func (p *Provider) Name() string { return ProviderName }

func (p *Provider) CanUse() bool { return true }

// ListByDate returns the slate for date; an empty date means today in UTC.
func (p *Provider) ListByDate(ctx context.Context, date string, _ *transport.Cycle) ([]fixtures.Fixture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := p.now().UTC()
	if date == "" {
		date = timeutil.FormatDate(now)
	}
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("fixture: invalid date %q: %w", date, err)
	}

	out := make([]fixtures.Fixture, 0, len(slate))
	for i, e := range slate {
		kickoff := day.Add(e.kickoff)
		comp := e.competition
		f := fixtures.Fixture{
			Provider:    ProviderName,
			ID:          fmt.Sprintf("%s-%d", date, i+1),
			Home:        e.home,
			Away:        e.away,
			Kickoff:     &kickoff,
			Competition: &comp,
		}
		f.Status, f.Score = progress(e, kickoff, now)
		out = append(out, f)
	}
	return out, nil
}

func progress(e entry, kickoff, now time.Time) (fixtures.Status, fixtures.Score) {
	switch {
	case e.status != "":
		return e.status, fixtures.Score{}
	case now.Before(kickoff):
		return fixtures.StatusScheduled, fixtures.Score{}
	case now.Before(kickoff.Add(matchLength)):
		half := fixtures.NewScore(e.home90/2, e.away90/2)
		return fixtures.StatusLive, half
	default:
		return fixtures.StatusFinished, fixtures.NewScore(e.home90, e.away90)
	}
}
