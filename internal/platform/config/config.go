// Package config loads service settings. Four layers are merged, each
// overriding the one before: built-in defaults, configs/base.yaml, the
// profile file configs/{profile}.yaml and APP_* environment variables.
package config

import (
	"time"

	"github.com/jsamuelsen11/validated-entities/internal/domain/schema"
)

// Config is the merged result of every layer.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Client     ClientConfig     `koanf:"client"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Validation ValidationConfig `koanf:"validation"`

	// Entities are registered next to the built-in User type, in order.
	Entities []EntityConfig `koanf:"entities"`
}

type ServerConfig struct {
	Host               string        `koanf:"host"`
	Port               int           `koanf:"port"`
	ReadTimeout        time.Duration `koanf:"read_timeout"`
	WriteTimeout       time.Duration `koanf:"write_timeout"`
	IdleTimeout        time.Duration `koanf:"idle_timeout"`
	HealthCheckTimeout time.Duration `koanf:"health_check_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig configures the resilient HTTP client that talks to a remote
// validation service.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig is an exponential backoff policy. MaxAttempts counts the first
// try.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig opens the breaker after MaxFailures consecutive
// failures and probes again with HalfOpenLimit requests once Timeout passes.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig is a token bucket. Zero RequestsPerSecond turns it off.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// ValidationConfig bounds batch construction.
type ValidationConfig struct {
	BatchWorkers int `koanf:"batch_workers"`
	MaxBatchSize int `koanf:"max_batch_size"`
}

// EntityConfig declares an entity type by name and ordered fields.
type EntityConfig struct {
	Name   string        `koanf:"name"`
	Fields []FieldConfig `koanf:"fields"`
}

// FieldConfig is one declared field. Type is text, integer or anything else,
// which maps to schema.FieldTypeOther.
type FieldConfig struct {
	Name string `koanf:"name"`
	Type string `koanf:"type"`
}

// FieldSpecs converts the declaration into schema field specs.
func (e EntityConfig) FieldSpecs() []schema.FieldSpec {
	specs := make([]schema.FieldSpec, len(e.Fields))
	for i, f := range e.Fields {
		specs[i] = schema.FieldSpec{Name: f.Name, Type: schema.ParseFieldType(f.Type)}
	}
	return specs
}
