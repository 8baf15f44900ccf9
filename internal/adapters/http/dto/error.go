package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/validated-entities/internal/domain"
	"github.com/jsamuelsen11/validated-entities/internal/domain/entity"
	"github.com/jsamuelsen11/validated-entities/internal/platform/logging"
)

// ContentTypeProblem is the media type of ErrorResponse bodies.
const ContentTypeProblem = "application/problem+json"

// LocationPrefix prefixes ErrorDetail.Location for fields of the request body.
const LocationPrefix = "body."

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail names the rejected field, the reason and the offending value.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusFor lists domain errors in match order; anything else is a 500.
var statusFor = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{entity.ErrUnknownField, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

func statusOf(err error) int {
	for _, s := range statusFor {
		if errors.Is(err, s.target) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse maps err to a problem body for request r. A
// *domain.ValidationError in the chain becomes the single Errors entry.
// Unmapped errors keep their text out of the body.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusOf(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status == http.StatusInternalServerError {
		resp.Detail = "internal server error"
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = []ErrorDetail{{
			Location: LocationPrefix + verr.Field,
			Message:  verr.Reason,
			Value:    verr.Value,
		}}
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json. Unmapped errors
// are logged in full since the body hides them.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "unhandled error", slog.Any("error", err))
	}
	write(w, r, resp)
}

// WriteProblem writes a problem body for a protocol-level failure that has no
// domain error behind it, such as an unsupported method.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	write(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	})
}

func write(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", err))
	}
}
