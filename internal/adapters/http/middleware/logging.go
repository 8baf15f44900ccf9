package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/validated-entities/internal/platform/logging"
)

// Logging writes one access log line per request and stores a child logger
// carrying request_id and correlation_id in the context for handlers and
// services. Request bodies are never logged: they hold the values being
// validated. The line's level follows the status: 5xx is Error, 4xx is Warn.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx := logging.WithLogger(r.Context(), child)

			if child.Enabled(ctx, slog.LevelDebug) {
				attrs := RedactHeaders(r.Header)
				args := make([]any, len(attrs))
				for i, a := range attrs {
					args[i] = a
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := statusOf(ww)
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			}
			if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
				attrs = append(attrs, slog.String("route", rctx.RoutePattern()))
			}
			child.Log(ctx, levelFor(status), "request completed", attrs...)
		})
	}
}

// statusOf treats a handler that wrote nothing as 200, as net/http does.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
