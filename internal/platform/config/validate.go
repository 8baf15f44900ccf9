package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every configuration error so a bad file reports all of
// them at once.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		p.addf(format, args...)
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.check(slices.Contains(allowed, got), "%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func (p problems) err() error { return errors.Join(p...) }

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(s.HealthCheckTimeout > 0, "server.health_check_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	c.Client.validate(&p)

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, exporters)
		p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint is required for the otlp exporter")
	}

	v := c.Validation
	p.check(v.BatchWorkers >= 1, "validation.batch_workers must be >= 1, got %d", v.BatchWorkers)
	p.check(v.MaxBatchSize >= 1, "validation.max_batch_size must be >= 1, got %d", v.MaxBatchSize)

	validateEntities(&p, c.Entities)
	return p.err()
}

func (cl ClientConfig) validate(p *problems) {
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second must not be negative, got %g",
		rl.RequestsPerSecond)
	p.check(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting, got %d", rl.BurstSize)
}

// validateEntities rejects declarations entity.Define would refuse, so a bad
// YAML file fails at startup. Unknown field type names are allowed and select
// no rule.
func validateEntities(p *problems, entities []EntityConfig) {
	types := make(map[string]bool, len(entities))

	for i, e := range entities {
		if strings.TrimSpace(e.Name) == "" {
			p.addf("entities[%d].name must not be empty", i)
			continue
		}
		key := strings.ToLower(e.Name)
		p.check(!types[key], "entities[%d]: type %q declared twice", i, e.Name)
		types[key] = true

		fields := make(map[string]bool, len(e.Fields))
		for j, f := range e.Fields {
			if strings.TrimSpace(f.Name) == "" {
				p.addf("entities[%d].fields[%d].name must not be empty", i, j)
				continue
			}
			p.check(!fields[f.Name], "entities[%d]: field %q declared twice in %q", i, f.Name, e.Name)
			fields[f.Name] = true
		}
	}
}
