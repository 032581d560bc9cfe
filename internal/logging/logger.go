package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls handler format, level and the optional rotating file sink.
type Config struct {
	Level   string
	Format  string
	Service string
	Version string
	File    string
}

const (
	rotateMaxSizeMB  = 10
	rotateMaxBackups = 5
	rotateMaxAgeDays = 14
)

// NewLogger returns a structured logger with sane defaults.
func NewLogger(cfg Config) *slog.Logger {
	return newLogger(cfg, resolveWriter(cfg.File))
}

// NewLoggerTo writes to w instead of stdout. A configured file still wins.
func NewLoggerTo(cfg Config, w io.Writer) *slog.Logger {
	if strings.TrimSpace(cfg.File) != "" || w == nil {
		return NewLogger(cfg)
	}
	return newLogger(cfg, w)
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	if attrs := WithCommon(nil, cfg.Service, cfg.Version); len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}
	return slog.New(handler)
}

// ParseLevel maps a textual level to slog, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// An empty path keeps logs on stdout; otherwise they go to a size-rotated file.
func resolveWriter(path string) io.Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotateMaxSizeMB,
		MaxBackups: rotateMaxBackups,
		MaxAge:     rotateMaxAgeDays,
		Compress:   true,
	}
}
