// Package entity binds validation rules to declared fields and enforces them
// on every write.
//
// An entity type is defined once from an ordered field list. Define selects a
// rule for each field and keeps the resulting bindings on the Type, where
// they are shared read-only by every instance:
//
//	userType := entity.MustDefine("User",
//	    schema.Text("email"),
//	    schema.Text("phone"),
//	    schema.Integer("age"),
//	    schema.Text("name"),
//	)
//
// Instances are created with New, which writes every field in declaration
// order through the same enforced path that Set uses. A rejected write
// returns a *domain.ValidationError and leaves stored state untouched:
//
//	u, err := entity.New(userType, map[string]any{
//	    "email": "test@example.com", "phone": "+7-123-456-78-90", "age": 25, "name": "Ivan",
//	})
//	err = u.Set("age", -5) // rejected, age is still 25
package entity

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/validated-entities/internal/domain/schema"
)

// ErrInvalidType is returned by Define when the field list cannot describe an
// entity type.
var ErrInvalidType = errors.New("entity: invalid type definition")

// Binding pairs a declared field with the one rule enforced on its writes.
type Binding struct {
	Field schema.FieldSpec
	Rule  schema.Rule
}

// Type is the binding table of an entity type. It is immutable once Define
// returns and safe for concurrent readers.
type Type struct {
	name     string
	order    []string
	bindings map[string]Binding
}

// Define builds the binding table for an entity type by selecting a rule for
// each declared field. Field order is kept and determines the order in which
// New writes fields.
func Define(name string, fields ...schema.FieldSpec) (*Type, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: type name must not be empty", ErrInvalidType)
	}

	t := &Type{
		name:     name,
		order:    make([]string, 0, len(fields)),
		bindings: make(map[string]Binding, len(fields)),
	}

	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: %s field %d has no name", ErrInvalidType, name, i)
		}
		if _, dup := t.bindings[f.Name]; dup {
			return nil, fmt.Errorf("%w: %s declares field %q twice", ErrInvalidType, name, f.Name)
		}
		t.order = append(t.order, f.Name)
		t.bindings[f.Name] = Binding{Field: f, Rule: schema.SelectFor(f)}
	}

	return t, nil
}

// MustDefine is Define for package-level declarations. It panics if the
// definition is invalid.
func MustDefine(name string, fields ...schema.FieldSpec) *Type {
	t, err := Define(name, fields...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the entity type name.
func (t *Type) Name() string {
	return t.name
}

// Binding returns the binding for the named field.
func (t *Type) Binding(field string) (Binding, bool) {
	b, ok := t.bindings[field]
	return b, ok
}

// Bindings returns every binding in declaration order.
func (t *Type) Bindings() []Binding {
	out := make([]Binding, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.bindings[name])
	}
	return out
}

// Fields returns the declared fields in declaration order.
func (t *Type) Fields() []schema.FieldSpec {
	out := make([]schema.FieldSpec, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.bindings[name].Field)
	}
	return out
}
