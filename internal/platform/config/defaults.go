package config

// defaults is the lowest configuration layer. Every key a YAML file or an
// APP_* variable may set appears here, which is also what lets envProvider
// resolve underscores inside key names.
func defaults() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"host":                 "0.0.0.0",
			"port":                 8080,
			"read_timeout":         "5s",
			"write_timeout":        "10s",
			"idle_timeout":         "120s",
			"health_check_timeout": "2s",
		},
		"log": map[string]any{
			"level":  "info",
			"format": "json",
		},
		"client": map[string]any{
			"base_url": "http://localhost:8080",
			"timeout":  "30s",
			"retry": map[string]any{
				"max_attempts":     3,
				"initial_interval": "100ms",
				"max_interval":     "10s",
				"multiplier":       2.0,
			},
			"circuit_breaker": map[string]any{
				"max_failures":    5,
				"timeout":         "30s",
				"half_open_limit": 1,
			},
			"rate_limit": map[string]any{
				"requests_per_second": 0,
				"burst_size":          1,
			},
		},
		"telemetry": map[string]any{
			"enabled":      false,
			"exporter":     "stdout",
			"endpoint":     "",
			"service_name": "validated-entities",
		},
		"validation": map[string]any{
			"batch_workers":  8,
			"max_batch_size": 100,
		},
	}
}
