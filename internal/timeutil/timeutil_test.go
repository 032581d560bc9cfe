package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestShiftDateCrossesMonthAndYear(t *testing.T) {
	cases := []struct {
		in   string
		days int
		want string
	}{
		{"2025-01-01", -1, "2024-12-31"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2025-03-30", 0, "2025-03-30"},
		{"2025-03-31", 1, "2025-04-01"},
	}
	for _, tc := range cases {
		got, err := ShiftDate(tc.in, tc.days)
		if err != nil {
			t.Fatalf("ShiftDate(%s, %d) error: %v", tc.in, tc.days, err)
		}
		if got != tc.want {
			t.Fatalf("ShiftDate(%s, %d) = %s, want %s", tc.in, tc.days, got, tc.want)
		}
	}
}

func TestShiftDateRejectsGarbage(t *testing.T) {
	if _, err := ShiftDate("31/12/2024", 1); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestTodayUsesLocation(t *testing.T) {
	now := time.Date(2025, 1, 1, 23, 30, 0, 0, time.UTC)
	plusTwo := time.FixedZone("plus2", 2*60*60)
	if got := Today(now, plusTwo); got != "2025-01-02" {
		t.Fatalf("expected next day in +02:00, got %s", got)
	}
	if got := Today(now, nil); got != "2025-01-01" {
		t.Fatalf("expected UTC day, got %s", got)
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil || loc != time.UTC {
		t.Fatalf("expected UTC for empty name, got %v %v", loc, err)
	}
	if _, err := LoadLocation("Mars/Olympus"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestFormatKickoff(t *testing.T) {
	if got := FormatKickoff(nil, time.UTC); got != "-" {
		t.Fatalf("expected dash for missing kickoff, got %s", got)
	}
	kick := time.Date(2025, 9, 14, 18, 45, 0, 0, time.UTC)
	plusTwo := time.FixedZone("plus2", 2*60*60)
	if got := FormatKickoff(&kick, plusTwo); got != "14/09/2025 20:45" {
		t.Fatalf("unexpected kickoff display %s", got)
	}
}
