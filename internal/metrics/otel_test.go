package metrics

import (
	"context"
	"testing"
	"time"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "wager-tracker",
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}

	// Exercise otel-backed recorders to ensure no panic.
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordProviderAttempt("football-data", time.Millisecond, nil)
	rec.RecordRetry("football-data", 300*time.Millisecond)
	rec.RecordRateLimit("football-data", time.Second)
	rec.RecordCacheLookup("football-data", true)
	rec.RecordResolution("football-data", "RESOLVED", 0.97)
	rec.RecordCycle(time.Second, 3, 0)

	if rec.Resolutions("football-data", "RESOLVED") != 1 {
		t.Fatalf("expected otel-backed recorder to keep in-memory counts")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestSetupDefaultsServiceName(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil || rec == nil || handler == nil {
		t.Fatalf("expected telemetry setup, got rec=%v handler=%v err=%v", rec, handler, err)
	}
	_ = shutdown(context.Background())
}
