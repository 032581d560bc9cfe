package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// KickoffLayout is the dd/mm/yyyy HH:MM display used in reports.
const KickoffLayout = "02/01/2006 15:04"

// DefaultTimezone is used for display when none is configured.
const DefaultTimezone = "Europe/Rome"

// ParseDate parses a YYYY-MM-DD date string as a UTC calendar day.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ShiftDate moves a YYYY-MM-DD date by whole UTC days.
func ShiftDate(value string, days int) (string, error) {
	parsed, err := ParseDate(value)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", value, err)
	}
	return FormatDate(parsed.AddDate(0, 0, days)), nil
}

// Today returns the calendar date of now as seen from loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return FormatDate(now.In(loc))
}

// LoadLocation resolves an IANA zone name, falling back to UTC for empty names.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// FormatKickoff renders an instant for display, or "-" when unknown.
func FormatKickoff(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(KickoffLayout)
}
