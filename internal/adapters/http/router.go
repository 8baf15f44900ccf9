// Package http is the inbound HTTP adapter: the chi routes of the entity API
// and the server that runs them.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/validated-entities/internal/adapters/http/dto"
	"github.com/jsamuelsen11/validated-entities/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/validated-entities/internal/domain"
)

const (
	typesPath = "/api/v1/types"
	typePath  = typesPath + "/{type}"
)

// NewRouter mounts the health probes and the entity API behind middlewares,
// outermost first. Unknown paths and methods answer with problem+json like
// every other error.
func NewRouter(
	entities *handlers.EntityHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("%w: no route for %s", domain.ErrNotFound, req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed, req.Method+" is not supported on "+req.URL.Path)
	})

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Get(typesPath, entities.ListTypes)
	r.Get(typePath, entities.GetType)
	r.Post(typePath+"/entities", entities.Construct)
	r.Post(typePath+"/entities/batch", entities.ConstructBatch)
	r.Post(typePath+"/fields/{field}/check", entities.CheckField)

	return r
}
