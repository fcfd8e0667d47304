package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/curator-backend/internal/config"
)

// redactedKeys never reach the log output with their values.
var redactedKeys = map[string]bool{
	"password":      true,
	"authorization": true,
	"api_key":       true,
	"token":         true,
	"access_token":  true,
}

// NewLogger creates a *slog.Logger writing to stderr and installs it as the
// default logger.
//
// Format "json" produces structured output (production); anything else
// produces text with source locations (development). Level is one of debug,
// info, warn or error, case-insensitive, and defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   !strings.EqualFold(cfg.Format, "json"),
		ReplaceAttr: redact,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if redactedKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, "[REDACTED]")
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
