package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments shared by the HTTP layers and the entity
// service.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// EntityConstructTotal counts construction attempts, labelled with
	// AttrEntityType and AttrResult. Rejections also carry AttrField and AttrRule.
	EntityConstructTotal    metric.Int64Counter
	EntityConstructDuration metric.Float64Histogram
}

// NewMetrics creates every instrument on mp's meter for scope. Tests pass a
// noop or ManualReader-backed provider.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	b := &builder{meter: mp.Meter(scope)}

	m := &Metrics{
		ServerRequestDuration: b.seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    b.counter("http.server.request.total", "{request}", "Incoming HTTP requests"),
		ClientRequestDuration: b.seconds("http.client.request.duration", "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    b.counter("http.client.request.total", "{request}", "Outgoing HTTP requests"),

		EntityConstructTotal: b.counter("entity.construct.total", "{entity}", "Entity construction attempts"),
		EntityConstructDuration: b.seconds("entity.construct.duration",
			"Duration of entity construction including rule evaluation"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return m, nil
}

// builder collects instrument creation errors so NewMetrics reads as a list.
type builder struct {
	meter metric.Meter
	err   error
}

func (b *builder) seconds(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func (b *builder) counter(name, unit, desc string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}
