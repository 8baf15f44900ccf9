package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/validated-entities/internal/platform/config"
	"github.com/jsamuelsen11/validated-entities/internal/platform/telemetry"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: false, Exporter: "bogus"})
	require.NoError(t, err)
	assert.Nil(t, p.Tracer)
	assert.Nil(t, p.Meter)
	assert.Nil(t, p.Metrics)
	assert.NoError(t, p.Shutdown(context.Background()))
}

// Enabled setups are not parallel: they replace the global providers.

func TestSetup_Stdout(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterStdout,
		ServiceName: "validated-entities-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, p.Shutdown(ctx)) })

	assert.NotNil(t, p.Tracer)
	assert.NotNil(t, p.Meter)
	require.NotNil(t, p.Metrics)
	assert.ElementsMatch(t,
		[]string{"traceparent", "tracestate", "baggage"},
		otel.GetTextMapPropagator().Fields())
}

func TestSetup_OTLP(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterOTLP,
		Endpoint:    "http://localhost:4318",
		ServiceName: "validated-entities-test",
	})
	require.NoError(t, err)
	// No collector is listening, so the final flush may fail.
	t.Cleanup(func() { _ = p.Shutdown(ctx) })

	assert.NotNil(t, p.Metrics)
}

func TestSetup_RejectsBadExporter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  error
	}{
		{name: "unknown exporter", exporter: "zipkin", wantErr: telemetry.ErrUnsupportedExporter},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{
				Enabled:  true,
				Exporter: tt.exporter,
				Endpoint: tt.endpoint,
			})
			require.Error(t, err)
			assert.Nil(t, p)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint     string
		wantHost     string
		wantInsecure bool
	}{
		{"http://otel-collector:4318", "otel-collector:4318", true},
		{"https://collector.example.com", "collector.example.com", false},
		{"collector:4318", "collector:4318", true},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			t.Parallel()

			host, insecure, err := telemetry.ParseTarget(telemetry.ExporterOTLP, tt.endpoint)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantInsecure, insecure)
		})
	}
}

func TestNewMetrics_RecordsConstruction(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), telemetry.ScopeName)
	require.NoError(t, err)

	ctx := context.Background()
	metrics.EntityConstructTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEntityType.String("User"),
		telemetry.AttrResult.String(telemetry.ResultRejected),
		telemetry.AttrField.String("age"),
		telemetry.AttrRule.String("age"),
	))
	metrics.EntityConstructDuration.Record(ctx, 0.001)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	assert.Equal(t, telemetry.ScopeName, rm.ScopeMetrics[0].Scope.Name)

	names := make([]string, 0, len(rm.ScopeMetrics[0].Metrics))
	for _, m := range rm.ScopeMetrics[0].Metrics {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t, []string{"entity.construct.total", "entity.construct.duration"}, names)
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), telemetry.ScopeName)
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		metrics.ServerRequestTotal.Add(context.Background(), 1)
		metrics.ClientRequestDuration.Record(context.Background(), 0.5)
	})
}
