package entity

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/validated-entities/internal/domain"
)

// registryName identifies the registry in readiness checks.
const registryName = "entity-types"

// Registry is a thread-safe set of entity types addressed by name. Types are
// registered at startup and looked up on every request.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Type
}

// NewRegistry creates a registry holding the given types.
func NewRegistry(types ...*Type) (*Registry, error) {
	r := &Registry{types: make(map[string]*Type, len(types))}
	for _, t := range types {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds t. Returns domain.ErrConflict if a type with the same name
// is already registered.
func (r *Registry) Register(t *Type) error {
	if t == nil {
		return fmt.Errorf("%w: nil type", ErrInvalidType)
	}

	key := strings.ToLower(t.name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[key]; ok {
		return fmt.Errorf("entity type %q already registered: %w", t.name, domain.ErrConflict)
	}
	r.types[key] = t
	return nil
}

// Lookup returns the type registered under name, ignoring case. Returns
// domain.ErrNotFound if there is none.
func (r *Registry) Lookup(name string) (*Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("entity type %q: %w", name, domain.ErrNotFound)
	}
	return t, nil
}

// Types returns every registered type sorted by name.
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	out := make([]*Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Type) int {
		return strings.Compare(a.name, b.name)
	})
	return out
}

// Name returns the registry's identifier for health reporting.
func (r *Registry) Name() string {
	return registryName
}

// HealthCheck reports an error while no entity type is registered, since
// the service cannot validate anything until one is.
func (r *Registry) HealthCheck(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.types) == 0 {
		return errors.New("no entity types registered")
	}
	return nil
}
