package server

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/preston-bernstein/wager-tracker/internal/config"
	"github.com/preston-bernstein/wager-tracker/internal/snapshots"
	"github.com/preston-bernstein/wager-tracker/internal/store"
	"github.com/preston-bernstein/wager-tracker/internal/testutil"
	"github.com/preston-bernstein/wager-tracker/internal/tracker"
)

func TestBuildArchiveDisabledWithoutDir(t *testing.T) {
	writer, archive := buildArchive(config.SnapshotsConfig{Dir: "  "})
	if writer != nil || archive != nil {
		t.Fatalf("expected archive disabled")
	}
	ms := store.NewMemoryStore()
	if sink := reportSink(ms, nil, nil); sink != ms {
		t.Fatalf("expected memory store as the only sink")
	}
}

func TestReportSinkArchivesAndStores(t *testing.T) {
	dir := t.TempDir()
	writer, archive := buildArchive(config.SnapshotsConfig{Dir: dir, RetentionDays: 3650})
	ms := store.NewMemoryStore()

	reportSink(ms, writer, nil).SetReport(testutil.SampleReport("c-1"))

	if _, ok := ms.Report(); !ok {
		t.Fatalf("expected report in memory store")
	}
	got, err := archive.LoadReport("2025-12-28")
	if err != nil || got.CycleID != "c-1" {
		t.Fatalf("expected archived report, got %+v %v", got, err)
	}
}

func TestReportSinkStoresEvenWhenArchiveFails(t *testing.T) {
	writer, _ := buildArchive(config.SnapshotsConfig{Dir: t.TempDir()})
	ms := store.NewMemoryStore()

	bad := testutil.SampleReport("c-1")
	bad.Date = "not-a-date"
	reportSink(ms, writer, nil).SetReport(bad)

	if r, ok := ms.Report(); !ok || r.CycleID != "c-1" {
		t.Fatalf("expected store updated despite archive failure")
	}
}

func TestServerArchivesCycles(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := offlineConfig()
	cfg.Snapshots = config.SnapshotsConfig{Dir: t.TempDir(), RetentionDays: 7}
	srv, err := New(cfg, offlineSlip, nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	srv.poller.Start(ctx)
	defer srv.poller.Stop(context.Background())

	report := waitForReport(t, srv.Store())
	path := snapshots.ReportPath(cfg.Snapshots.Dir, report.Date)
	deadline := time.Now().Add(time.Second)
	for {
		if _, err := os.Stat(path); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for archived report at %s", path)
		}
		time.Sleep(5 * time.Millisecond)
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/reports/"+report.Date, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var archived tracker.Report
	testutil.DecodeJSON(t, rr, &archived)
	if len(archived.Rows) != 2 {
		t.Fatalf("expected archived rows, got %+v", archived)
	}
}
