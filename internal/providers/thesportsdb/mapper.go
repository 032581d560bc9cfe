package thesportsdb

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
)

func mapEvent(ev eventDetail, raw json.RawMessage) fixtures.Fixture {
	f := fixtures.Fixture{
		Provider: ProviderName,
		ID:       ev.IDEvent,
		Home:     ev.StrHomeTeam,
		Away:     ev.StrAwayTeam,
		Kickoff:  parseKickoff(ev),
		Status:   mapStatus(ev.StrStatus),
		Score:    fixtures.Score{Home: ev.IntHomeScore.Value, Away: ev.IntAwayScore.Value},
		Raw:      raw,
	}
	if ev.IDLeague != "" || ev.StrLeague != "" {
		f.Competition = &fixtures.Competition{ID: ev.IDLeague, Name: ev.StrLeague}
	}
	return f
}

var (
	finishedTokens = map[string]struct{}{"ft": {}, "aet": {}, "pen": {}, "aot": {}}
	liveTokens     = map[string]struct{}{"1h": {}, "2h": {}, "ht": {}, "et": {}, "bt": {}, "halftime": {}}
)

// mapStatus reads TheSportsDB's free-text status. Short codes are matched
// as whole words so "Halftime" is not mistaken for "FT".
func mapStatus(status string) fixtures.Status {
	v := strings.ToLower(strings.TrimSpace(status))
	if v == "" {
		return fixtures.StatusUnknown
	}
	words := strings.FieldsFunc(v, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	has := func(set map[string]struct{}) bool {
		for _, w := range words {
			if _, ok := set[w]; ok {
				return true
			}
		}
		return false
	}

	switch {
	case strings.Contains(v, "finished") || has(finishedTokens):
		return fixtures.StatusFinished
	case strings.Contains(v, "postponed"):
		return fixtures.StatusPostponed
	case strings.Contains(v, "canceled") || strings.Contains(v, "cancelled") || strings.Contains(v, "abandoned"):
		return fixtures.StatusCanceled
	case strings.Contains(v, "live") || strings.Contains(v, "in play") || has(liveTokens):
		return fixtures.StatusLive
	case strings.Contains(v, "scheduled") || strings.Contains(v, "not started") || strings.Contains(v, "timed") || v == "ns":
		return fixtures.StatusScheduled
	default:
		return fixtures.StatusUnknown
	}
}

var timestampLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

// Kickoff comes from strTimestamp, else dateEvent plus strTime, else
// midnight on dateEvent. Naive values are read as UTC.
func parseKickoff(ev eventDetail) *time.Time {
	candidates := []string{strings.TrimSpace(ev.StrTimestamp)}
	if ev.DateEvent != "" {
		if t := strings.TrimSpace(ev.StrTime); t != "" {
			candidates = append(candidates, ev.DateEvent+"T"+strings.TrimSuffix(t, "Z"))
		}
		candidates = append(candidates, ev.DateEvent+"T00:00:00")
	}

	for _, value := range candidates {
		if value == "" {
			continue
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, value); err == nil {
				utc := parsed.UTC()
				return &utc
			}
		}
	}
	return nil
}
