// Package log builds the configured slog.Logger used across sdlpad. Without
// a log file, non-error levels go to stdout and errors to stderr so the two
// streams can be redirected independently.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup builds a slog.Logger for the given level name and optional file path.
// The returned closer is nil unless a file was opened.
func Setup(level, file string) (*slog.Logger, io.Closer, error) {
	lvl := ParseLevel(level)

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
		slog.SetDefault(logger)
		return logger, f, nil
	}

	stdout := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	stderr := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
	logger := slog.New(splitHandler{out: stdout, err: stderr})
	slog.SetDefault(logger)
	return logger, nil, nil
}

// splitHandler routes records below Error to one handler and the rest to
// another.
type splitHandler struct {
	out slog.Handler
	err slog.Handler
}

func (s splitHandler) pick(level slog.Level) slog.Handler {
	if level >= slog.LevelError {
		return s.err
	}
	return s.out
}

func (s splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.pick(level).Enabled(ctx, level)
}

func (s splitHandler) Handle(ctx context.Context, r slog.Record) error {
	return s.pick(r.Level).Handle(ctx, r)
}

func (s splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return splitHandler{out: s.out.WithAttrs(attrs), err: s.err.WithAttrs(attrs)}
}

func (s splitHandler) WithGroup(name string) slog.Handler {
	return splitHandler{out: s.out.WithGroup(name), err: s.err.WithGroup(name)}
}
