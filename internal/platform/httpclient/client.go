// Package httpclient is the outbound HTTP client used to reach a remote
// validation service. Every call passes through, outermost first:
//
//	rate limiter -> circuit breaker -> client span -> retry with backoff -> net/http
//
// The request and correlation IDs stored with WithRequestID and
// WithCorrelationID are copied onto each outbound request along with the W3C
// trace context.
package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/validated-entities/internal/platform/config"
	"github.com/jsamuelsen11/validated-entities/internal/platform/telemetry"
)

// Client sends requests to one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	peer    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil when unlimited
	retry   retryPolicy
	tracer  trace.Tracer
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client for the service named peer, which labels spans, metrics,
// logs and the breaker. metrics may be nil.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		peer:    peer,
		breaker: newBreaker(peer, cfg.CircuitBreaker, logger),
		retry:   newRetryPolicy(cfg.Retry),
		tracer:  otel.GetTracerProvider().Tracer(telemetry.ScopeName),
		metrics: metrics,
		logger:  logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// BaseURL is the root URL requests are built against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name is the downstream service name. With HealthCheck it makes Client a
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.peer
}

// Do sends req under ctx.
//
// A non-retryable status returns resp and a nil error; the caller closes the
// body. When retries run out on a retryable status, resp is returned open
// together with a *StatusError. Transport failures, breaker rejections and
// context errors return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.record(ctx, req.Method, start, nil, err)
			return nil, err
		}
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.traced(ctx, req)
	})
	c.record(ctx, req.Method, start, resp, err)
	return resp, err
}

// traced runs the retry loop inside a client span and propagates IDs and
// trace context to the outbound request.
func (c *Client) traced(ctx context.Context, req *http.Request) (*http.Response, error) {
	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.peer,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			telemetry.AttrPeerService.String(c.peer),
		),
	)
	defer span.End()

	req = req.WithContext(ctx)
	propagateIDs(ctx, req.Header)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.send(ctx, req)
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return resp, err
}

func (c *Client) record(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if isBreakerRejection(err) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}
