package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/wager-tracker/internal/config"
	"github.com/preston-bernstein/wager-tracker/internal/logging"
	"github.com/preston-bernstein/wager-tracker/internal/poller"
	"github.com/preston-bernstein/wager-tracker/internal/snapshots"
	"github.com/preston-bernstein/wager-tracker/internal/store"
	"github.com/preston-bernstein/wager-tracker/internal/tracker"
)

// buildArchive returns nil values when archiving is disabled.
func buildArchive(cfg config.SnapshotsConfig) (*snapshots.Writer, snapshots.Store) {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return nil, nil
	}
	return snapshots.NewWriter(dir, cfg.RetentionDays), snapshots.NewFSStore(dir)
}

// reportSink feeds every cycle to the memory store and, when configured, the
// on-disk archive. Archive failures are logged and never block the store.
func reportSink(memoryStore *store.MemoryStore, writer *snapshots.Writer, logger *slog.Logger) poller.ReportSink {
	if writer == nil {
		return memoryStore
	}
	return poller.SinkFunc(func(r tracker.Report) {
		memoryStore.SetReport(r)
		if err := writer.WriteReport(r); err != nil {
			logging.Warn(logger, "archive report failed", logging.FieldCycleID, r.CycleID, "error", err)
		}
	})
}
