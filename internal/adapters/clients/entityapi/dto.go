package entityapi

import (
	"github.com/jsamuelsen11/validated-entities/internal/domain/schema"
	"github.com/jsamuelsen11/validated-entities/internal/ports"
)

// constructRequestDTO is the body of POST /api/v1/types/{type}/entities.
type constructRequestDTO struct {
	Values map[string]any `json:"values"`
}

// checkFieldRequestDTO is the body of POST /api/v1/types/{type}/fields/{field}/check.
type checkFieldRequestDTO struct {
	Value any `json:"value"`
}

type entityDTO struct {
	Type    string         `json:"type"`
	Values  map[string]any `json:"values"`
	Display string         `json:"display"`
}

type checkFieldResponseDTO struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Valid bool   `json:"valid"`
}

func toRemoteEntity(d *entityDTO) *ports.RemoteEntity {
	values := make(map[string]any, len(d.Values))
	for k, v := range d.Values {
		values[k] = normalizeValue(v)
	}
	return &ports.RemoteEntity{
		Type:    d.Type,
		Values:  values,
		Display: d.Display,
	}
}

func toRule(d *checkFieldResponseDTO) schema.Rule {
	return schema.ParseRule(d.Rule)
}
