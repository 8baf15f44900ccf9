// Package health runs readiness checks for the service. Checks execute
// concurrently, each under its own deadline, so one slow dependency cannot
// stall the readiness probe past the configured timeout.
package health

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/validated-entities/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check when no timeout is configured.
const DefaultCheckTimeout = 2 * time.Second

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds every individual check. Non-positive values keep
// the default.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Registry implements [ports.HealthRegistry]. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	checkers map[string]ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		checkers: make(map[string]ports.HealthChecker),
		timeout:  DefaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker. A checker with the same name is replaced in place.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.checkers[name]; !ok {
		r.order = append(r.order, name)
	}
	r.checkers[name] = checker
}

// CheckAll runs every check concurrently and waits for all of them. A check
// that outlives the per-check timeout is reported as failed.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	names := slices.Clone(r.order)
	checkers := make([]ports.HealthChecker, len(names))
	for i, name := range names {
		checkers[i] = r.checkers[name]
	}
	r.mu.RUnlock()

	errs := make([]error, len(checkers))

	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			errs[i] = r.check(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(names))
	for i, name := range names {
		results[name] = errs[i]
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: health check: %w", c.Name(), ctx.Err())
	}
}
