package footballdata

import "time"

const (
	ProviderName       = "football-data"
	defaultBaseURL     = "https://api.football-data.org/v4"
	defaultHTTPTimeout = 10 * time.Second
	authHeader         = "X-Auth-Token"
)

// DefaultCompetitions are Champions League, Bundesliga, La Liga, Ligue 1,
// Serie A and Premier League.
var DefaultCompetitions = []string{"2001", "2002", "2014", "2015", "2019", "2021"}

var competitionNames = map[string]string{
	"2001": "Champions League",
	"2002": "Bundesliga",
	"2014": "La Liga",
	"2015": "Ligue 1",
	"2019": "Serie A",
	"2021": "Premier League",
}

// CompetitionName returns a display name for a competition id.
func CompetitionName(id string) string {
	if name, ok := competitionNames[id]; ok {
		return name
	}
	if id == "" {
		return ""
	}
	return "Competition " + id
}
