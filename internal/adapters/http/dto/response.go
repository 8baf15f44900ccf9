// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"net/http"

	"github.com/jsamuelsen11/validated-entities/internal/domain/entity"
	"github.com/jsamuelsen11/validated-entities/internal/ports"
)

// FieldResponse describes one declared field and the rule bound to it.
type FieldResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Rule string `json:"rule"`
}

// TypeResponse represents an entity type in HTTP responses. Fields are in
// declaration order, which is also validation order.
type TypeResponse struct {
	Name   string          `json:"name"`
	Fields []FieldResponse `json:"fields"`
}

// TypeListResponse represents a list of entity types in HTTP responses.
type TypeListResponse struct {
	Types []TypeResponse `json:"types"`
	Count int            `json:"count"`
}

// EntityResponse represents a constructed entity. Display is the entity's
// string form.
type EntityResponse struct {
	Type    string         `json:"type"`
	Values  map[string]any `json:"values"`
	Display string         `json:"display"`
}

// BatchItemResponse is the outcome of one record of a batch. Exactly one of
// Entity and Error is set.
type BatchItemResponse struct {
	Index  int             `json:"index"`
	Entity *EntityResponse `json:"entity,omitempty"`
	Error  *ErrorResponse  `json:"error,omitempty"`
}

// BatchResponse represents the per-record outcomes of a batch construction.
type BatchResponse struct {
	Accepted int                 `json:"accepted"`
	Rejected int                 `json:"rejected"`
	Results  []BatchItemResponse `json:"results"`
}

// CheckFieldResponse reports that a value was accepted by a field's rule.
type CheckFieldResponse struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Valid bool   `json:"valid"`
}

// ToTypeResponse converts an entity type to an HTTP response DTO.
func ToTypeResponse(t *entity.Type) TypeResponse {
	bindings := t.Bindings()
	resp := TypeResponse{
		Name:   t.Name(),
		Fields: make([]FieldResponse, len(bindings)),
	}
	for i, b := range bindings {
		resp.Fields[i] = FieldResponse{
			Name: b.Field.Name,
			Type: b.Field.Type.String(),
			Rule: b.Rule.String(),
		}
	}
	return resp
}

// ToTypeListResponse converts a slice of entity types to a list response DTO.
func ToTypeListResponse(types []*entity.Type) TypeListResponse {
	resp := TypeListResponse{
		Types: make([]TypeResponse, len(types)),
		Count: len(types),
	}
	for i, t := range types {
		resp.Types[i] = ToTypeResponse(t)
	}
	return resp
}

// ToEntityResponse converts a constructed entity to an HTTP response DTO.
func ToEntityResponse(e *entity.Entity) EntityResponse {
	return EntityResponse{
		Type:    e.Type().Name(),
		Values:  e.Values(),
		Display: e.String(),
	}
}

// ToBatchResponse converts a batch result to an HTTP response DTO. Rejected
// records carry a problem document built against r.
func ToBatchResponse(r *http.Request, res *ports.BatchResult) BatchResponse {
	resp := BatchResponse{
		Accepted: res.Accepted,
		Rejected: res.Rejected,
		Results:  make([]BatchItemResponse, len(res.Items)),
	}
	for i, item := range res.Items {
		out := BatchItemResponse{Index: item.Index}
		if item.Err != nil {
			problem := NewErrorResponse(r, item.Err)
			out.Error = &problem
		} else {
			ent := ToEntityResponse(item.Entity)
			out.Entity = &ent
		}
		resp.Results[i] = out
	}
	return resp
}

// ToCheckFieldResponse converts an accepting binding to an HTTP response DTO.
func ToCheckFieldResponse(b entity.Binding) CheckFieldResponse {
	return CheckFieldResponse{
		Field: b.Field.Name,
		Rule:  b.Rule.String(),
		Valid: true,
	}
}
