package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/validated-entities/internal/adapters/http"
	"github.com/jsamuelsen11/validated-entities/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/validated-entities/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/validated-entities/internal/app"
	"github.com/jsamuelsen11/validated-entities/internal/domain/entity"
	"github.com/jsamuelsen11/validated-entities/internal/domain/user"
	"github.com/jsamuelsen11/validated-entities/internal/platform/config"
	"github.com/jsamuelsen11/validated-entities/internal/platform/health"
	"github.com/jsamuelsen11/validated-entities/internal/platform/telemetry"
	"github.com/jsamuelsen11/validated-entities/internal/ports"
)

// newInjector declares the service graph. Nothing is built until the server
// is invoked. metrics may be nil when telemetry is disabled.
func newInjector(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)
	do.ProvideValue(i, metrics)

	do.Provide(i, func(do.Injector) (*entity.Registry, error) {
		return newEntityRegistry(cfg.Entities)
	})

	do.Provide(i, func(i do.Injector) (ports.EntityService, error) {
		return app.NewEntityService(
			do.MustInvoke[*entity.Registry](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
			app.EntityServiceOptions{
				BatchWorkers: cfg.Validation.BatchWorkers,
				MaxBatchSize: cfg.Validation.MaxBatchSize,
			},
		), nil
	})

	do.Provide(i, func(i do.Injector) (ports.HealthRegistry, error) {
		checks := health.New(health.WithCheckTimeout(cfg.Server.HealthCheckTimeout))
		checks.Register(do.MustInvoke[*entity.Registry](i))
		return checks, nil
	})

	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			handlers.NewEntityHandler(do.MustInvoke[ports.EntityService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			chimw.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})

	return i
}

// newEntityRegistry registers the built-in User type followed by every type
// declared under entities in the loaded config.
func newEntityRegistry(declared []config.EntityConfig) (*entity.Registry, error) {
	registry, err := entity.NewRegistry(user.Type)
	if err != nil {
		return nil, err
	}

	for _, e := range declared {
		t, err := entity.Define(e.Name, e.FieldSpecs()...)
		if err != nil {
			return nil, fmt.Errorf("defining entity type %q: %w", e.Name, err)
		}
		if err := registry.Register(t); err != nil {
			return nil, fmt.Errorf("registering entity type %q: %w", e.Name, err)
		}
	}

	return registry, nil
}
