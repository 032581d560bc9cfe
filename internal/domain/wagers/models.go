package wagers

import (
	"strings"

	"github.com/preston-bernstein/wager-tracker/internal/domain/fixtures"
)

// Wager is one pick on the slip.
type Wager struct {
	Home string  `json:"home" yaml:"home"`
	Away string  `json:"away" yaml:"away"`
	Bet  BetKind `json:"bet" yaml:"bet"`
}

// Match renders the pick as "Home - Away".
func (w Wager) Match() string {
	return w.Home + " - " + w.Away
}

// BetStatus is the settlement state of a wager.
type BetStatus string

const (
	StatusWin      BetStatus = "WIN"
	StatusLose     BetStatus = "LOSE"
	StatusPending  BetStatus = "PENDING"
	StatusNotFound BetStatus = "NOT_FOUND"
)

// Outcome pairs a settlement state with the reason it was reached.
type Outcome struct {
	Status BetStatus `json:"status"`
	Reason string    `json:"reason"`
}

// Settled is true once the wager needs no further polling.
func (o Outcome) Settled() bool {
	switch o.Status {
	case StatusWin, StatusLose, StatusNotFound:
		return true
	default:
		return false
	}
}

// Evaluate settles a wager against its resolved fixture. A failed
// resolution stays pending so a later cycle can retry it.
func Evaluate(w Wager, resolved fixtures.Resolved) Outcome {
	if resolved.Err != nil {
		return Outcome{Status: StatusPending, Reason: "ERROR:" + string(resolved.Err.Kind)}
	}
	match := resolved.Fixture
	if match == nil {
		return Outcome{Status: StatusNotFound, Reason: "NOT_FOUND"}
	}

	switch match.Status {
	case fixtures.StatusFinished:
	case fixtures.StatusPostponed, fixtures.StatusCanceled:
		return Outcome{Status: StatusPending, Reason: "POSTPONED/CANCELED"}
	case fixtures.StatusLive:
		return Outcome{Status: StatusPending, Reason: "LIVE"}
	default:
		status := match.Status
		if status == "" {
			status = fixtures.StatusUnknown
		}
		return Outcome{Status: StatusPending, Reason: strings.ToUpper(string(status))}
	}

	if !match.Score.Complete() {
		return Outcome{Status: StatusPending, Reason: "NO_SCORE"}
	}
	if w.Bet.Wins(*match.Score.Home, *match.Score.Away) {
		return Outcome{Status: StatusWin, Reason: "FINISHED"}
	}
	return Outcome{Status: StatusLose, Reason: "FINISHED"}
}
