// Package ports holds the interfaces the adapters and the application layer
// meet at. HTTP handlers call EntityService, the demo CLI calls EntityClient,
// and the readiness probe walks a HealthRegistry of HealthCheckers.
package ports
