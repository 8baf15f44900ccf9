package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/validated-entities/internal/platform/telemetry"
)

// serverSpans traces inbound requests and feeds the server metrics.
type serverSpans struct {
	tracer  trace.Tracer
	metrics *telemetry.Metrics
}

// OpenTelemetry wraps each request in a server span that continues any W3C
// trace context from the caller. After routing the span takes the route
// pattern as its name and the {type} path parameter as entity.type. A nil
// metrics records spans only.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	s := serverSpans{
		tracer:  otel.GetTracerProvider().Tracer(telemetry.ScopeName),
		metrics: metrics,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			ctx, span := s.start(r)
			defer span.End()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := statusOf(ww)
			s.finish(ctx, span, r.Method, status)
			s.record(ctx, r.Method, status, time.Since(began))
		})
	}
}

func spanName(method, path string) string { return "HTTP " + method + " " + path }

func (s serverSpans) start(r *http.Request) (context.Context, trace.Span) {
	parent := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	return s.tracer.Start(parent, spanName(r.Method, r.URL.Path),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.url", r.URL.String()),
		),
	)
}

// finish reads the chi route context, which is only complete once the
// router has served the request.
func (s serverSpans) finish(ctx context.Context, span trace.Span, method string, status int) {
	if rctx := chi.RouteContext(ctx); rctx != nil {
		if route := rctx.RoutePattern(); route != "" {
			span.SetName(spanName(method, route))
			span.SetAttributes(attribute.String("http.route", route))
		}
		if typ := rctx.URLParam("type"); typ != "" {
			span.SetAttributes(telemetry.AttrEntityType.String(typ))
		}
	}

	span.SetAttributes(attribute.Int("http.status_code", status))
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}

func (s serverSpans) record(ctx context.Context, method string, status int, took time.Duration) {
	if s.metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	set := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)
	s.metrics.ServerRequestDuration.Record(ctx, took.Seconds(), set)
	s.metrics.ServerRequestTotal.Add(ctx, 1, set)
}
