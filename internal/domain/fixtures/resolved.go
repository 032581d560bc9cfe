package fixtures

// Outcome is the result class of a resolution attempt.
type Outcome string

const (
	OutcomeResolved Outcome = "RESOLVED"
	OutcomeNotFound Outcome = "NOT_FOUND"
	OutcomeError    Outcome = "ERROR"
)

// ErrorKind classifies why a provider call failed.
type ErrorKind string

const (
	ErrorNetwork ErrorKind = "NETWORK"
	ErrorTimeout ErrorKind = "TIMEOUT"
	ErrorHTTP    ErrorKind = "HTTP"
	ErrorUnknown ErrorKind = "UNKNOWN"
)

// ResolveError is a classified provider failure carried as data.
type ResolveError struct {
	Kind     ErrorKind `json:"code"`
	Message  string    `json:"message"`
	Provider string    `json:"provider,omitempty"`
}

// Resolved is the outcome of matching one wager against provider data.
// Fixture is set only for RESOLVED and Err only for ERROR.
type Resolved struct {
	Provider   string        `json:"provider"`
	Fixture    *Fixture      `json:"fixture,omitempty"`
	Confidence float64       `json:"confidence"`
	Reason     Outcome       `json:"reason"`
	Err        *ResolveError `json:"error,omitempty"`
}

// NewResolved wraps an accepted fixture.
func NewResolved(provider string, fixture Fixture, confidence float64) Resolved {
	return Resolved{
		Provider:   provider,
		Fixture:    &fixture,
		Confidence: confidence,
		Reason:     OutcomeResolved,
	}
}

// NewNotFound reports that no provider produced an acceptable fixture.
func NewNotFound(provider string) Resolved {
	return Resolved{Provider: provider, Reason: OutcomeNotFound}
}

// NewError reports the last classified failure.
func NewError(provider string, err ResolveError) Resolved {
	return Resolved{Provider: provider, Reason: OutcomeError, Err: &err}
}

// Outcome reports which of the three result classes holds.
func (r Resolved) Outcome() Outcome {
	switch {
	case r.Err != nil:
		return OutcomeError
	case r.Fixture != nil:
		return OutcomeResolved
	default:
		return OutcomeNotFound
	}
}
