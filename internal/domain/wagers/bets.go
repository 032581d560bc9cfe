package wagers

import (
	"fmt"
	"strings"
)

// BetKind names a supported market.
type BetKind string

const (
	BetX2Under35 BetKind = "X2Under35"
	BetGG        BetKind = "GG"
	Bet12        BetKind = "12"
	BetOver25    BetKind = "Over25"
	Bet1         BetKind = "1"
	BetX2        BetKind = "X2"
	Bet1X        BetKind = "1X"
	Bet2         BetKind = "2"
	BetUnder25   BetKind = "Under25"
	BetX2Over25  BetKind = "X2Over25"
)

type definition struct {
	label string
	wins  func(home, away int) bool
}

func awayOrDraw(home, away int) bool { return away >= home }
func totalAtMost(limit int) func(int, int) bool {
	return func(home, away int) bool { return home+away <= limit }
}
func totalAtLeast(limit int) func(int, int) bool {
	return func(home, away int) bool { return home+away >= limit }
}

var definitions = map[BetKind]definition{
	BetX2Under35: {"X2 + Under 3.5", func(h, a int) bool { return awayOrDraw(h, a) && totalAtMost(3)(h, a) }},
	BetGG:        {"GG", func(h, a int) bool { return h >= 1 && a >= 1 }},
	Bet12:        {"12", func(h, a int) bool { return h != a }},
	BetOver25:    {"Over 2.5", totalAtLeast(3)},
	Bet1:         {"1", func(h, a int) bool { return h > a }},
	BetX2:        {"X2", awayOrDraw},
	Bet1X:        {"1X", func(h, a int) bool { return h >= a }},
	Bet2:         {"2", func(h, a int) bool { return a > h }},
	BetUnder25:   {"Under 2.5", totalAtMost(2)},
	BetX2Over25:  {"X2 + Over 2.5", func(h, a int) bool { return awayOrDraw(h, a) && totalAtLeast(3)(h, a) }},
}

// Kinds lists every supported bet kind in a stable order.
func Kinds() []BetKind {
	return []BetKind{BetX2Under35, BetGG, Bet12, BetOver25, Bet1, BetX2, Bet1X, Bet2, BetUnder25, BetX2Over25}
}

// ParseBetKind accepts a kind name case-insensitively.
func ParseBetKind(raw string) (BetKind, error) {
	trimmed := strings.TrimSpace(raw)
	for _, kind := range Kinds() {
		if strings.EqualFold(trimmed, string(kind)) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown bet kind %q", raw)
}

// Label is the human-readable market name.
func (k BetKind) Label() string {
	if def, ok := definitions[k]; ok {
		return def.label
	}
	return string(k)
}

// Wins reports whether a final score settles the bet as won.
func (k BetKind) Wins(home, away int) bool {
	def, ok := definitions[k]
	return ok && def.wins(home, away)
}
