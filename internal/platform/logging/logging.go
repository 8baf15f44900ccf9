// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(...))
//	logging.FromContext(ctx).WarnContext(ctx, "entity rejected",
//	    slog.String("entity_type", typeName),
//	    slog.Any("rejected", verr),
//	)
//
// Rejected field values are personal data. Call sites log field and rule
// names, never values: *domain.ValidationError logs as its field and reason
// only. The masq policy in redact.go catches what slips through.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is any name slog understands
// ("debug", "INFO", "warn+2"); anything else means info. format "text"
// selects the text handler and everything else JSON. Debug loggers also
// record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: defaultPolicy.replaceAttr(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
