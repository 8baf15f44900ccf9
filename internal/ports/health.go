package ports

import "context"

// HealthChecker reports the health of one dependency of the service, such as
// the entity type registry or the remote entity API.
type HealthChecker interface {
	// Name identifies the checker in readiness output ("entity-types",
	// "entity-api"). Names are unique within a registry.
	Name() string

	// HealthCheck returns nil when healthy. It must honor ctx deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker for the readiness probe.
type HealthRegistry interface {
	// Register adds checker, replacing any checker with the same name.
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns its error keyed by name.
	// A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
