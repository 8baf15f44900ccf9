package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/validated-entities/internal/platform/config"
)

// Providers owns the SDK providers installed by Setup. The zero value is a
// disabled setup whose Shutdown does nothing.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup installs global tracer and meter providers and the W3C trace-context
// and baggage propagators, then registers the service metrics. On any error
// the providers created so far are shut down.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	target, err := parseTarget(cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	p := &Providers{}

	spans, err := target.spanExporter(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	p.Tracer = sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))

	readings, err := target.metricExporter(ctx)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("creating metric exporter: %w", err), p.Shutdown(ctx))
	}
	p.Meter = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
		sdkmetric.WithResource(res),
	)

	if p.Metrics, err = NewMetrics(p.Meter, ScopeName); err != nil {
		return nil, errors.Join(err, p.Shutdown(ctx))
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops whichever providers exist.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// target is a parsed exporter destination.
type target struct {
	exporter string
	host     string // host:port for OTLP
	insecure bool
}

// parseTarget accepts "stdout" or "otlp" with an http(s) collector URL such
// as http://otel-collector:4318. A bare host:port is used as given, over
// plain HTTP.
func parseTarget(exporter, endpoint string) (target, error) {
	switch exporter {
	case ExporterStdout:
		return target{exporter: exporter}, nil
	case ExporterOTLP:
		if endpoint == "" {
			return target{}, errors.New("otlp exporter requires an endpoint")
		}
		t := target{exporter: exporter, host: endpoint, insecure: true}
		if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
			t.host = u.Host
			t.insecure = u.Scheme != "https"
		}
		return t, nil
	default:
		return target{}, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

func (t target) spanExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if t.exporter == ExporterStdout {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(t.host)}
	if t.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func (t target) metricExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	if t.exporter == ExporterStdout {
		return stdoutmetric.New()
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(t.host)}
	if t.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}
