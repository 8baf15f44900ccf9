package ports

import (
	"context"

	"github.com/jsamuelsen11/validated-entities/internal/domain/schema"
)

// EntityClient defines the client port for a remote validated-entities API.
// Implemented by the entityapi adapter; used by the demo CLI in remote mode.
// Rejections are translated back into *domain.ValidationError so callers
// handle remote and local failures the same way.
type EntityClient interface {
	// Construct asks the remote service to build an entity of the named type.
	// Returns domain.ErrNotFound if the remote does not know the type.
	Construct(ctx context.Context, typeName string, values map[string]any) (*RemoteEntity, error)

	// CheckField asks the remote service whether value is acceptable for
	// field and returns the rule that accepted it.
	CheckField(ctx context.Context, typeName, field string, value any) (schema.Rule, error)
}

// RemoteEntity is an entity as rendered by the remote service. Its values have
// been validated remotely; JSON decoding may widen integers to int64.
type RemoteEntity struct {
	Type    string
	Values  map[string]any
	Display string
}
