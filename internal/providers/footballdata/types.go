package footballdata

import "encoding/json"

type matchesResponse struct {
	Competition *competitionResponse `json:"competition"`
	Matches     []json.RawMessage    `json:"matches"`
}

type competitionResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type matchResponse struct {
	ID       int64         `json:"id"`
	UTCDate  string        `json:"utcDate"`
	Status   string        `json:"status"`
	HomeTeam teamResponse  `json:"homeTeam"`
	AwayTeam teamResponse  `json:"awayTeam"`
	Score    scoreResponse `json:"score"`
}

type teamResponse struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

type scoreResponse struct {
	Winner   *string    `json:"winner"`
	Duration string     `json:"duration"`
	FullTime *scorePair `json:"fullTime"`
	HalfTime *scorePair `json:"halfTime"`
}

type scorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}
