package footballdata

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
)

func mapMatch(m matchResponse, raw json.RawMessage, competition fixtures.Competition) fixtures.Fixture {
	comp := competition
	return fixtures.Fixture{
		Provider:    ProviderName,
		ID:          strconv.FormatInt(m.ID, 10),
		Home:        m.HomeTeam.Name,
		Away:        m.AwayTeam.Name,
		Kickoff:     parseKickoff(m.UTCDate),
		Status:      mapStatus(m.Status),
		Score:       mapScore(m.Score),
		Competition: &comp,
		Raw:         raw,
	}
}

func mapStatus(status string) fixtures.Status {
	switch status {
	case "FINISHED", "AWARDED":
		return fixtures.StatusFinished
	case "IN_PLAY", "PAUSED", "SUSPENDED":
		return fixtures.StatusLive
	case "SCHEDULED", "TIMED":
		return fixtures.StatusScheduled
	case "POSTPONED":
		return fixtures.StatusPostponed
	case "CANCELED", "CANCELLED":
		return fixtures.StatusCanceled
	default:
		return fixtures.StatusUnknown
	}
}

// Full time wins when it has any side; half time is the fallback. Each side
// is kept as reported.
func mapScore(s scoreResponse) fixtures.Score {
	for _, pair := range []*scorePair{s.FullTime, s.HalfTime} {
		if pair != nil && (pair.Home != nil || pair.Away != nil) {
			return fixtures.Score{Home: pair.Home, Away: pair.Away}
		}
	}
	return fixtures.Score{}
}

func parseKickoff(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	utc := parsed.UTC()
	return &utc
}
