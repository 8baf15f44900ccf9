package entity

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/validated-entities/internal/domain"
)

// ErrUnknownField is returned when a write names a field the entity type
// does not declare.
var ErrUnknownField = errors.New("entity: unknown field")

// Entity is an instance of a Type. Field values only change through Set or
// New, both of which check the field's bound rule before storing.
//
// Entity is safe for concurrent use. Each write holds the instance lock for
// the full lookup, check and store sequence.
//
// Instances must come from New. The zero Entity has no type: Set rejects
// every write with ErrInvalidType and String renders "<nil>".
type Entity struct {
	typ    *Type
	mu     sync.RWMutex
	values map[string]any
}

// New creates an instance of t from initial values for every declared field.
// Fields are written in declaration order through the enforced write path and
// committed together: if any write is rejected, no instance is returned and
// the error names the first rejected field.
//
// Keys in values that t does not declare fail with ErrUnknownField before any
// field is checked. A declared field missing from values is rejected with a
// *domain.ValidationError.
func New(t *Type, values map[string]any) (*Entity, error) {
	var unknown []string
	for key := range values {
		if _, ok := t.bindings[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("%w: %s has no field %s", ErrUnknownField, t.name, strings.Join(unknown, ", "))
	}

	staged := make(map[string]any, len(t.order))
	for _, field := range t.order {
		v, ok := values[field]
		if !ok {
			return nil, &domain.ValidationError{Field: field, Reason: domain.MsgRequired}
		}
		if err := t.enforce(field, v); err != nil {
			return nil, err
		}
		staged[field] = v
	}

	return &Entity{typ: t, values: staged}, nil
}

// Validate checks a single write of value to field without an instance.
func Validate(t *Type, field string, value any) error {
	return t.enforce(field, value)
}

// enforce is the only place a binding's rule is evaluated. Set, New and
// Validate all go through it.
func (t *Type) enforce(field string, value any) error {
	b, ok := t.bindings[field]
	if !ok {
		return fmt.Errorf("%w: %s has no field %q", ErrUnknownField, t.name, field)
	}
	if !b.Rule.Check(value) {
		return &domain.ValidationError{
			Field:  field,
			Value:  value,
			Reason: b.Rule.Description(),
		}
	}
	return nil
}

// Type returns the entity's type.
func (e *Entity) Type() *Type {
	return e.typ
}

// Get returns the stored value of field. The boolean is false when the field
// has never been assigned or is not declared.
func (e *Entity) Get(field string) (any, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.values[field]
	return v, ok
}

// Set assigns value to field if the field's rule accepts it. On rejection
// the previously stored value is kept and a *domain.ValidationError is
// returned.
func (e *Entity) Set(field string, value any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.typ == nil {
		return fmt.Errorf("%w: entity has no type, create it with New", ErrInvalidType)
	}
	if err := e.typ.enforce(field, value); err != nil {
		return err
	}
	e.values[field] = value
	return nil
}

// Values returns a copy of all stored field values.
func (e *Entity) Values() map[string]any {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.values)
}

// String renders the stored values in declaration order, for example
// "User(email=test@example.com, age=25)". Unset fields are omitted.
func (e *Entity) String() string {
	if e.typ == nil {
		return "<nil>"
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	parts := make([]string, 0, len(e.typ.order))
	for _, field := range e.typ.order {
		if v, ok := e.values[field]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", field, v))
		}
	}
	return e.typ.name + "(" + strings.Join(parts, ", ") + ")"
}
