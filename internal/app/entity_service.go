// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/validated-entities/internal/app/fanout"
	"github.com/jsamuelsen11/validated-entities/internal/domain"
	"github.com/jsamuelsen11/validated-entities/internal/domain/entity"
	"github.com/jsamuelsen11/validated-entities/internal/platform/telemetry"
	"github.com/jsamuelsen11/validated-entities/internal/ports"
)

// Compile-time check that EntityService implements ports.EntityService.
var _ ports.EntityService = (*EntityService)(nil)

// Default batch limits used when EntityServiceOptions leaves them unset.
const (
	defaultBatchWorkers = 8
	defaultMaxBatchSize = 100
)

// EntityServiceOptions tunes batch construction.
type EntityServiceOptions struct {
	BatchWorkers int
	MaxBatchSize int
}

// EntityService implements ports.EntityService on top of the entity type
// registry. It handles lookup, structured logging and metrics; every rule
// decision is made by the entity package.
type EntityService struct {
	registry *entity.Registry
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	opts     EntityServiceOptions
}

// NewEntityService creates an EntityService. metrics may be nil when telemetry
// is disabled. A nil logger discards output.
func NewEntityService(
	registry *entity.Registry,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	opts EntityServiceOptions,
) *EntityService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.BatchWorkers < 1 {
		opts.BatchWorkers = defaultBatchWorkers
	}
	if opts.MaxBatchSize < 1 {
		opts.MaxBatchSize = defaultMaxBatchSize
	}
	return &EntityService{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
		opts:     opts,
	}
}

// ListTypes returns every registered entity type, sorted by name.
func (s *EntityService) ListTypes(ctx context.Context) ([]*entity.Type, error) {
	s.logger.DebugContext(ctx, "listing entity types")
	return s.registry.Types(), nil
}

// GetType returns a registered entity type by name.
func (s *EntityService) GetType(ctx context.Context, name string) (*entity.Type, error) {
	t, err := s.registry.Lookup(name)
	if err != nil {
		s.logger.InfoContext(ctx, "entity type not found",
			slog.String("operation", "GetType"),
			slog.String("entity_type", name),
		)
		return nil, err
	}
	return t, nil
}

// Construct builds a new entity of the named type from values.
func (s *EntityService) Construct(ctx context.Context, typeName string, values map[string]any) (*entity.Entity, error) {
	t, err := s.GetType(ctx, typeName)
	if err != nil {
		return nil, err
	}
	return s.construct(ctx, t, values)
}

// ConstructBatch constructs each record independently using at most
// BatchWorkers goroutines. Results keep input order.
func (s *EntityService) ConstructBatch(
	ctx context.Context,
	typeName string,
	records []map[string]any,
) (*ports.BatchResult, error) {
	if len(records) > s.opts.MaxBatchSize {
		return nil, &domain.ValidationError{
			Field:  "records",
			Value:  len(records),
			Reason: fmt.Sprintf("must contain at most %d records", s.opts.MaxBatchSize),
		}
	}

	t, err := s.GetType(ctx, typeName)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "constructing entity batch",
		slog.String("entity_type", t.Name()),
		slog.Int("count", len(records)),
	)

	results := fanout.Run(ctx, s.opts.BatchWorkers, records,
		func(ctx context.Context, values map[string]any) (*entity.Entity, error) {
			return s.construct(ctx, t, values)
		},
	)

	out := &ports.BatchResult{Items: make([]ports.BatchItem, len(results))}
	for i, r := range results {
		out.Items[i] = ports.BatchItem{Index: i, Entity: r.Value, Err: r.Err}
	}
	out.Accepted, out.Rejected = fanout.Count(results)

	s.logger.InfoContext(ctx, "entity batch constructed",
		slog.String("entity_type", t.Name()),
		slog.Int("accepted", out.Accepted),
		slog.Int("rejected", out.Rejected),
	)

	return out, nil
}

// CheckField runs the rule bound to field against value.
func (s *EntityService) CheckField(ctx context.Context, typeName, field string, value any) (entity.Binding, error) {
	t, err := s.GetType(ctx, typeName)
	if err != nil {
		return entity.Binding{}, err
	}

	if err := entity.Validate(t, field, value); err != nil {
		s.logger.InfoContext(ctx, "field value rejected",
			slog.String("operation", "CheckField"),
			slog.String("entity_type", t.Name()),
			rejection(err),
		)
		return entity.Binding{}, err
	}

	b, _ := t.Binding(field)
	return b, nil
}

// construct builds one entity and records the outcome. Rejections are logged
// by field and reason only.
func (s *EntityService) construct(ctx context.Context, t *entity.Type, values map[string]any) (*entity.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	e, err := entity.New(t, values)
	s.recordConstruct(ctx, t, start, err)

	if err != nil {
		s.logger.InfoContext(ctx, "entity rejected",
			slog.String("operation", "Construct"),
			slog.String("entity_type", t.Name()),
			rejection(err),
		)
		return nil, err
	}

	s.logger.DebugContext(ctx, "entity constructed", slog.String("entity_type", t.Name()))
	return e, nil
}

// rejection describes err for a log record. A validation error contributes
// its field and reason, never the refused value.
func rejection(err error) slog.Attr {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return slog.Any("rejected", verr)
	}
	return slog.String("error", err.Error())
}

func (s *EntityService) recordConstruct(ctx context.Context, t *entity.Type, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	attrs := []attribute.KeyValue{telemetry.AttrEntityType.String(t.Name())}

	var verr *domain.ValidationError
	switch {
	case err == nil:
		attrs = append(attrs, telemetry.AttrResult.String(telemetry.ResultAccepted))
	case errors.As(err, &verr):
		attrs = append(attrs,
			telemetry.AttrResult.String(telemetry.ResultRejected),
			telemetry.AttrField.String(verr.Field),
		)
		if b, ok := t.Binding(verr.Field); ok {
			attrs = append(attrs, telemetry.AttrRule.String(b.Rule.String()))
		}
	default:
		attrs = append(attrs, telemetry.AttrResult.String(telemetry.ResultRejected))
	}

	opt := metric.WithAttributes(attrs...)
	s.metrics.EntityConstructDuration.Record(ctx, time.Since(start).Seconds(), opt)
	s.metrics.EntityConstructTotal.Add(ctx, 1, opt)
}
