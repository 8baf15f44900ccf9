package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/validated-entities/internal/domain/schema"
	"github.com/jsamuelsen11/validated-entities/internal/platform/config"
)

const repoConfigs = "../../../configs"

func loadRepo(t *testing.T, profile string) *config.Config {
	t.Helper()
	cfg, err := config.Load(profile, config.WithConfigDir(repoConfigs))
	require.NoError(t, err)
	return cfg
}

func TestLoad_Profiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		profile   string
		level     string
		format    string
		telemetry bool
		exporter  string
	}{
		{profile: "local", level: "debug", format: "text", telemetry: false, exporter: "stdout"},
		{profile: "dev", level: "debug", format: "json", telemetry: true, exporter: "stdout"},
		{profile: "prod", level: "info", format: "json", telemetry: true, exporter: "otlp"},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			t.Parallel()

			cfg := loadRepo(t, tt.profile)
			assert.Equal(t, tt.level, cfg.Log.Level)
			assert.Equal(t, tt.format, cfg.Log.Format)
			assert.Equal(t, tt.telemetry, cfg.Telemetry.Enabled)
			assert.Equal(t, tt.exporter, cfg.Telemetry.Exporter)
		})
	}
}

func TestLoad_ProdPointsAtCollector(t *testing.T) {
	t.Parallel()

	cfg := loadRepo(t, "prod")
	assert.NotEmpty(t, cfg.Telemetry.Endpoint)
	assert.Equal(t, "http://validated-entities:8080", cfg.Client.BaseURL)
}

func TestLoad_ProfileInheritsBase(t *testing.T) {
	t.Parallel()

	cfg := loadRepo(t, "local")

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, 5, cfg.Client.CircuitBreaker.MaxFailures)
	assert.Equal(t, 2, cfg.Validation.BatchWorkers, "local overrides base")
	assert.Equal(t, 100, cfg.Validation.MaxBatchSize)
}

func TestLoad_EntitiesFromBase(t *testing.T) {
	t.Parallel()

	cfg := loadRepo(t, "local")

	require.Len(t, cfg.Entities, 2)
	assert.Equal(t, "Contact", cfg.Entities[0].Name)
	assert.Equal(t, "Patient", cfg.Entities[1].Name)
	assert.Equal(t, []schema.FieldSpec{
		schema.Text("fullName"),
		schema.Text("workEmail"),
		schema.Text("mobilePhone"),
	}, cfg.Entities[0].FieldSpecs())
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		env   string
		value string
		check func(t *testing.T, cfg *config.Config)
	}{
		{"APP_SERVER_PORT", "9090", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 9090, cfg.Server.Port)
		}},
		{"APP_SERVER_READ_TIMEOUT", "15s", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		}},
		{"APP_SERVER_HEALTH_CHECK_TIMEOUT", "750ms", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 750*time.Millisecond, cfg.Server.HealthCheckTimeout)
		}},
		{"APP_CLIENT_RETRY_MAX_ATTEMPTS", "7", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 7, cfg.Client.Retry.MaxAttempts)
		}},
		{"APP_VALIDATION_MAX_BATCH_SIZE", "42", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 42, cfg.Validation.MaxBatchSize)
			assert.Equal(t, 2, cfg.Validation.BatchWorkers)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			tt.check(t, loadRepo(t, "local"))
		})
	}
}

func TestLoad_InvalidEnvFailsValidation(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "verbose")

	_, err := config.Load("local", config.WithConfigDir(repoConfigs))
	require.Error(t, err)
	assert.ErrorContains(t, err, "log.level")
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "bare.yaml"), "log:\n  format: text\n")

	cfg, err := config.Load("bare", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.HealthCheckTimeout)
	assert.Equal(t, 8, cfg.Validation.BatchWorkers)
	assert.InDelta(t, 2.0, cfg.Client.Retry.Multiplier, 0)
	assert.Empty(t, cfg.Entities)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "server:\n  port: 8080\n")
	writeFile(t, filepath.Join(dir, "broken.yaml"), "server: [\n")

	for _, profile := range []string{"missing", "broken", "", "  ", "../etc", "a/b", `a\b`} {
		_, err := config.Load(profile, config.WithConfigDir(dir))
		assert.Error(t, err, "profile %q", profile)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
