package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/validated-entities/internal/adapters/http/dto"
	"github.com/jsamuelsen11/validated-entities/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checks ports.HealthRegistry
}

// NewHealthHandler returns a HealthHandler reporting on checks.
func NewHealthHandler(checks ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Liveness handles GET /health/live. The process answering is the check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, dto.LivenessResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 when every registered check
// passes, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToReadinessResponse(h.checks.CheckAll(r.Context()))

	code := http.StatusOK
	if !resp.Ready() {
		code = http.StatusServiceUnavailable
	}
	respond(w, r, code, resp)
}
