// Package logging provides the small Logger interface the registry and CLI
// log through, with an slog adapter and a no-op logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/agility/pkg/types"
)

// Logger is the minimal structured logging interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement Logger.
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...any) {}
func (NoOpLogger) Info(string, ...any)  {}
func (NoOpLogger) Warn(string, ...any)  {}
func (NoOpLogger) Error(string, ...any) {}

// Options configures New.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	Output io.Writer
}

// New builds a slog-backed Logger. Unknown or empty levels fall back to warn
// and unknown formats to text; callers validate with types.Config first.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	hopts := &slog.HandlerOptions{Level: Level(opts.Level)}
	var handler slog.Handler
	if strings.EqualFold(opts.Format, types.LogFormatJSON) {
		handler = slog.NewJSONHandler(out, hopts)
	} else {
		handler = slog.NewTextHandler(out, hopts)
	}
	return NewSlogAdapter(slog.New(handler))
}

// Level maps a config level name to an slog.Level.
func Level(name string) slog.Level {
	switch strings.ToLower(name) {
	case types.LogLevelDebug:
		return slog.LevelDebug
	case types.LogLevelInfo:
		return slog.LevelInfo
	case types.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
