package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loader)

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(l *loader) {
		l.dir = dir
	}
}

// layer is one source in the precedence stack.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

type loader struct {
	dir string
	k   *koanf.Koanf
}

// Load builds a Config from, in increasing precedence: built-in defaults,
// {dir}/base.yaml, {dir}/{profile}.yaml and APP_* environment variables.
//
// Environment names are matched against keys already known from the lower
// layers, so underscores inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT          -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS    -> client.retry.max_attempts
//	APP_VALIDATION_MAX_BATCH_SIZE    -> validation.max_batch_size
//
// Unknown names fall back to replacing every underscore with a dot. Entity
// declarations are lists and can only come from YAML.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{dir: defaultConfigDir, k: koanf.New(".")}
	for _, opt := range opts {
		opt(l)
	}

	layers := []layer{
		{name: "defaults", provider: confmap.Provider(defaults(), ".")},
		{name: "base config", provider: file.Provider(filepath.Join(l.dir, "base.yaml")), parser: yaml.Parser()},
		{name: "profile config", provider: file.Provider(filepath.Join(l.dir, profile+".yaml")), parser: yaml.Parser()},
	}
	for _, ly := range layers {
		if err := l.k.Load(ly.provider, ly.parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", ly.name, err)
		}
	}

	if err := l.k.Load(l.envProvider(), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// envProvider maps APP_* variables onto the keys loaded so far.
func (l *loader) envProvider() *env.Env {
	known := make(map[string]string, len(l.k.Keys()))
	for _, key := range l.k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
}

// validateProfile rejects profile names that could escape the config dir.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
