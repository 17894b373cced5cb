// Package logger provides a structured, levelled logger built on log/slog.
//
// Log lines go to stderr so they never interleave with the menu rendering on
// stdout. WithSession returns a logger pre-tagged with the session id, so
// every line from one checkout session is correlated:
//
//	log := logger.WithSession(session.ID())
//	log.Info("sale completed", "total", "13.20")
//	// → time=... level=INFO msg="sale completed" session_id=a1b2c3d4 total=13.20
package logger

import (
	"log/slog"
	"os"

	"github.com/shashiranjanraj/tokri/config"
)

var L *slog.Logger

func init() {
	opts := &slog.HandlerOptions{}
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		opts.Level = slog.LevelInfo
		handler = slog.NewJSONHandler(os.Stderr, opts) // structured JSON for log aggregators
	default:
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stderr, opts) // human-readable for dev
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// WithSession returns a *slog.Logger pre-tagged with the session id.
func WithSession(id string) *slog.Logger {
	if id == "" {
		return L
	}
	return L.With("session_id", id)
}
