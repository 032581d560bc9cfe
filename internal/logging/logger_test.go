package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerUsesTextHandlerWithInfoLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Level: "info"})

	if enabled := logger.Enabled(context.Background(), slog.LevelInfo); !enabled {
		t.Fatal("expected info level to be enabled")
	}

	if enabled := logger.Enabled(context.Background(), slog.LevelDebug); enabled {
		t.Fatal("expected debug level to be disabled")
	}
}

func TestNewLoggerJSONCarriesServiceAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(Config{Format: "json", Service: "wager-tracker", Version: "dev"}, &buf)
	logger.Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if entry[FieldService] != "wager-tracker" || entry[FieldVersion] != "dev" {
		t.Fatalf("expected common fields, got %+v", entry)
	}
}

func TestNewLoggerToWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	NewLoggerTo(Config{}, &buf).Info("to-writer")
	if !strings.Contains(buf.String(), "to-writer") {
		t.Fatalf("expected log line in writer, got %q", buf.String())
	}
	if NewLoggerTo(Config{}, nil) == nil {
		t.Fatal("expected stdout logger for nil writer")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestResolveWriterRotatesToFile(t *testing.T) {
	if resolveWriter("  ") != os.Stdout {
		t.Fatal("expected stdout for blank path")
	}

	path := filepath.Join(t.TempDir(), "tracker.log")
	w := resolveWriter(path)
	if _, err := w.Write([]byte("line\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if closer, ok := w.(io.Closer); ok {
		_ = closer.Close()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	if string(raw) != "line\n" {
		t.Fatalf("unexpected file contents %q", raw)
	}
}

func TestFromContextFallsBack(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&buf, nil))
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger")
	}

	scoped := fallback.With("scope", "request")
	ctx := WithLogger(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Fatal("expected context logger")
	}
	if got := WithLogger(ctx, nil); got != ctx {
		t.Fatal("expected nil logger to leave context untouched")
	}
}

func TestHelpersAreNilSafe(t *testing.T) {
	Debug(nil, "x")
	Info(nil, "x")
	Warn(nil, "x")
	Error(nil, "x", nil)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Error(logger, "boom", context.Canceled, FieldProvider, "football-data")
	if !strings.Contains(buf.String(), "context canceled") || !strings.Contains(buf.String(), "football-data") {
		t.Fatalf("expected error and provider in output, got %q", buf.String())
	}
}
