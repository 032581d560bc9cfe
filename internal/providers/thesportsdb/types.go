package thesportsdb

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type searchResponse struct {
	Event []searchEvent `json:"event"`
}

type searchEvent struct {
	IDEvent   string `json:"idEvent"`
	StrEvent  string `json:"strEvent"`
	DateEvent string `json:"dateEvent"`
}

type lookupResponse struct {
	Events []json.RawMessage `json:"events"`
}

type eventDetail struct {
	IDEvent      string        `json:"idEvent"`
	StrEvent     string        `json:"strEvent"`
	IDLeague     string        `json:"idLeague"`
	StrLeague    string        `json:"strLeague"`
	DateEvent    string        `json:"dateEvent"`
	StrTime      string        `json:"strTime"`
	StrTimestamp string        `json:"strTimestamp"`
	StrStatus    string        `json:"strStatus"`
	IntHomeScore numericString `json:"intHomeScore"`
	IntAwayScore numericString `json:"intAwayScore"`
	StrHomeTeam  string        `json:"strHomeTeam"`
	StrAwayTeam  string        `json:"strAwayTeam"`
}

// numericString decodes scores sent as "2", 2, "" or null.
type numericString struct {
	Value *int
}

func (n *numericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	if raw == "" {
		n.Value = nil
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		n.Value = nil
		return nil
	}
	n.Value = &v
	return nil
}
