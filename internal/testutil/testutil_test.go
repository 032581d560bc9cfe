package testutil

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/domain/wagers"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseRFC3339(now.Format(time.RFC3339)) != now {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	MustParseRFC3339("not-a-time")
}

func TestFixturesHelper(t *testing.T) {
	f := SampleFixture("id-1", 2, 1)
	if f.ID != "id-1" || !f.Score.Complete() || *f.Score.Home != 2 {
		t.Fatalf("unexpected fixture %+v", f)
	}
	r := SampleReport("c-1")
	if r.CycleID != "c-1" || len(r.Rows) != 2 || r.AllSettled {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.Rows[0].BetStatus != wagers.StatusWin || r.Rows[1].Error == nil {
		t.Fatalf("unexpected rows %+v", r.Rows)
	}
}

func TestHTTPHelpers(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
	})
	rr := Serve(h, http.MethodGet, "/x", nil)
	AssertStatus(t, rr, http.StatusOK)
	var body map[string]string
	DecodeJSON(t, rr, &body)
	if body["path"] != "/x" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if !strings.Contains(buf.String(), "k=v") {
		t.Fatalf("expected buffered log output, got %q", buf.String())
	}
}
