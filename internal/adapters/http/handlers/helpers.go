package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/validated-entities/internal/adapters/http/dto"
	"github.com/jsamuelsen11/validated-entities/internal/domain"
	"github.com/jsamuelsen11/validated-entities/internal/platform/logging"
)

// maxBodyBytes caps every request body at 1 MiB.
const maxBodyBytes = 1 << 20

const msgBodyTooLarge = "request body exceeds 1 MiB"

// endpoint computes a response without touching the writer. A non-nil error
// is rendered as a problem body instead of status and payload.
type endpoint func(r *http.Request) (status int, payload any, err error)

// serve runs ep with a size-limited body and writes its outcome.
func serve(w http.ResponseWriter, r *http.Request, ep endpoint) {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	}

	status, payload, err := ep(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	respond(w, r, status, payload)
}

func respond(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.FromContext(r.Context()).Warn("writing response body", slog.Any("error", err))
	}
}

// params returns the named chi URL parameters in order. A blank one is a
// validation error naming the parameter.
func params(r *http.Request, names ...string) ([]string, error) {
	values := make([]string, len(names))
	for i, name := range names {
		values[i] = strings.TrimSpace(chi.URLParam(r, name))
		if values[i] == "" {
			return nil, &domain.ValidationError{Field: name, Reason: domain.MsgRequired}
		}
	}
	return values, nil
}

// request is a JSON body that checks its own shape.
type request interface {
	Validate() error
}

// bind decodes the body into dst and validates it. Numbers stay json.Number
// so the DTOs can tell integers from floats.
func bind(r *http.Request, dst request) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &domain.ValidationError{Field: "body", Reason: msgBodyTooLarge}
		}
		return &domain.ValidationError{Field: "body", Reason: domain.MsgInvalidJSON}
	}
	return dst.Validate()
}
