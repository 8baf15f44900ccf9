package ports

import (
	"context"

	"github.com/jsamuelsen11/validated-entities/internal/domain/entity"
)

// EntityService defines the service port for validated entity operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every value that reaches an entity passes through the rule bound to its
// field when the type was defined.
type EntityService interface {
	// ListTypes returns every registered entity type, sorted by name.
	ListTypes(ctx context.Context) ([]*entity.Type, error)

	// GetType returns a registered entity type by name (case-insensitive).
	// Returns domain.ErrNotFound if no such type is registered.
	GetType(ctx context.Context, name string) (*entity.Type, error)

	// Construct builds a new entity of the named type from values.
	// Returns domain.ErrNotFound if the type does not exist,
	// entity.ErrUnknownField for values naming undeclared fields, and a
	// *domain.ValidationError (wrapping domain.ErrValidation) for the first
	// field, in declaration order, whose value is missing or rejected.
	Construct(ctx context.Context, typeName string, values map[string]any) (*entity.Entity, error)

	// ConstructBatch constructs each record independently with bounded
	// concurrency. Uses partial success semantics: each record succeeds or
	// fails on its own. Returns a hard error only for request-level failures
	// (type not found, batch too large).
	ConstructBatch(ctx context.Context, typeName string, records []map[string]any) (*BatchResult, error)

	// CheckField runs the rule bound to one field against value without
	// building an entity, and returns the binding that accepted it.
	CheckField(ctx context.Context, typeName, field string, value any) (entity.Binding, error)
}

// BatchItem records the outcome of one record within a batch. Exactly one of
// Entity and Err is set.
type BatchItem struct {
	Index  int
	Entity *entity.Entity
	Err    error
}

// BatchResult holds the outcomes of a batch construction in input order.
type BatchResult struct {
	Items    []BatchItem
	Accepted int
	Rejected int
}
