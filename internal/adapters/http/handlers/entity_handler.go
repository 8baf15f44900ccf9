// Package handlers serves the entity and health endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/validated-entities/internal/adapters/http/dto"
	"github.com/jsamuelsen11/validated-entities/internal/ports"
)

// Path parameter names shared with the router.
const (
	ParamType  = "type"
	ParamField = "field"
)

// EntityHandler exposes the entity registry, construction and single-field
// checks over HTTP.
type EntityHandler struct {
	svc ports.EntityService
}

func NewEntityHandler(svc ports.EntityService) *EntityHandler {
	return &EntityHandler{svc: svc}
}

// ListTypes handles GET /api/v1/types.
func (h *EntityHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (int, any, error) {
		types, err := h.svc.ListTypes(r.Context())
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, dto.ToTypeListResponse(types), nil
	})
}

// GetType handles GET /api/v1/types/{type}.
func (h *EntityHandler) GetType(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (int, any, error) {
		p, err := params(r, ParamType)
		if err != nil {
			return 0, nil, err
		}
		t, err := h.svc.GetType(r.Context(), p[0])
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, dto.ToTypeResponse(t), nil
	})
}

// Construct handles POST /api/v1/types/{type}/entities and answers 201 with
// the built entity.
func (h *EntityHandler) Construct(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (int, any, error) {
		p, err := params(r, ParamType)
		if err != nil {
			return 0, nil, err
		}
		var req dto.ConstructRequest
		if err := bind(r, &req); err != nil {
			return 0, nil, err
		}
		e, err := h.svc.Construct(r.Context(), p[0], req.FieldValues())
		if err != nil {
			return 0, nil, err
		}
		return http.StatusCreated, dto.ToEntityResponse(e), nil
	})
}

// ConstructBatch handles POST /api/v1/types/{type}/entities/batch. Rejected
// records are reported per item and do not fail the request.
func (h *EntityHandler) ConstructBatch(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (int, any, error) {
		p, err := params(r, ParamType)
		if err != nil {
			return 0, nil, err
		}
		var req dto.BatchRequest
		if err := bind(r, &req); err != nil {
			return 0, nil, err
		}
		res, err := h.svc.ConstructBatch(r.Context(), p[0], req.FieldValues())
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, dto.ToBatchResponse(r, res), nil
	})
}

// CheckField handles POST /api/v1/types/{type}/fields/{field}/check.
func (h *EntityHandler) CheckField(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (int, any, error) {
		p, err := params(r, ParamType, ParamField)
		if err != nil {
			return 0, nil, err
		}
		var req dto.CheckFieldRequest
		if err := bind(r, &req); err != nil {
			return 0, nil, err
		}
		value, err := req.FieldValue()
		if err != nil {
			return 0, nil, err
		}
		b, err := h.svc.CheckField(r.Context(), p[0], p[1], value)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, dto.ToCheckFieldResponse(b), nil
	})
}
