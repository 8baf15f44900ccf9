package httpclient

import (
	"context"
	"net/http"
)

// idHeader is both the context key for a caller-supplied ID and the header
// it is sent in.
type idHeader string

const (
	requestIDHeader     idHeader = "X-Request-ID"
	correlationIDHeader idHeader = "X-Correlation-ID"
)

// WithRequestID makes outbound calls under ctx carry X-Request-ID: id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDHeader, id)
}

// WithCorrelationID makes outbound calls under ctx carry X-Correlation-ID: id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDHeader, id)
}

func propagateIDs(ctx context.Context, h http.Header) {
	for _, key := range []idHeader{requestIDHeader, correlationIDHeader} {
		if id, _ := ctx.Value(key).(string); id != "" {
			h.Set(string(key), id)
		}
	}
}
