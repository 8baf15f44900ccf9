// Package middleware holds the inbound HTTP middleware of the validation
// service. Order matters; cmd/server installs them as
// Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/validated-entities/internal/platform/httpclient"
)

// Header names for request tracking.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// maxIDLen bounds client-supplied IDs; longer values are not trusted.
const maxIDLen = 128

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id in ctx for this package and for outbound calls made
// through httpclient.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// RequestIDFromContext returns the request ID, or "" if none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id in ctx for this package and for outbound calls
// made through httpclient.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation ID, or "" if none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID reuses a client X-Request-ID of at most 128 bytes or generates a
// UUID, then echoes it on the response.
func RequestID() func(http.Handler) http.Handler {
	return trackID(HeaderRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID reuses a client X-Correlation-ID or falls back to the request
// ID, so it must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return trackID(HeaderCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

// trackID is the shared shape of RequestID and CorrelationID.
func trackID(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if id == "" || len(id) > maxIDLen {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}
