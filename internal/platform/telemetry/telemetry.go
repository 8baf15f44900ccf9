// Package telemetry sets up OpenTelemetry tracing and metrics for the
// validation service and owns the instruments its layers record on.
//
//	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer providers.Shutdown(ctx)
//	providers.Metrics.EntityConstructTotal.Add(ctx, 1, ...)
//
// With telemetry disabled Setup installs nothing and Metrics is nil; every
// recorder in the service accepts a nil *Metrics.
package telemetry

import (
	"errors"

	"go.opentelemetry.io/otel/attribute"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ScopeName is the instrumentation scope of the service's tracer and meter.
const ScopeName = "github.com/jsamuelsen11/validated-entities"

// Attribute keys for metric labels and span attributes.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrEntityType  = attribute.Key("entity.type")
	AttrField       = attribute.Key("entity.field")
	AttrRule        = attribute.Key("entity.rule")
)

// Values of AttrResult for entity construction.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// ErrUnsupportedExporter is returned for exporter names other than
// ExporterStdout and ExporterOTLP.
var ErrUnsupportedExporter = errors.New("unsupported exporter")
