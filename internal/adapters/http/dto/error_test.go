package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/validated-entities/internal/adapters/http/dto"
	"github.com/jsamuelsen11/validated-entities/internal/domain"
	"github.com/jsamuelsen11/validated-entities/internal/domain/entity"
)

func TestNewErrorResponse_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", &domain.ValidationError{Field: "email", Reason: domain.MsgRequired}, http.StatusBadRequest},
		{"unknown field", fmt.Errorf("%w: User has no field nickname", entity.ErrUnknownField), http.StatusBadRequest},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("looking up entity type: %w", domain.ErrNotFound), http.StatusNotFound},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"unavailable", domain.ErrUnavailable, http.StatusBadGateway},
		{"unmapped", errors.New("oops"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dto.NewErrorResponse(httptest.NewRequest(http.MethodGet, "/api/v1/types/User", http.NoBody), tt.err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, http.StatusText(tt.wantStatus), got.Title)
			assert.Equal(t, "about:blank", got.Type)
			assert.Equal(t, "/api/v1/types/User", got.Instance)
		})
	}
}

func TestNewErrorResponse_Detail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)

	assert.Equal(t, domain.ErrNotFound.Error(), dto.NewErrorResponse(r, domain.ErrNotFound).Detail)
	assert.Equal(t, "internal server error",
		dto.NewErrorResponse(r, errors.New("dial tcp 10.0.0.7:5432: refused")).Detail)
}

func TestNewErrorResponse_ValidationEntry(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Field: "age", Value: int64(-5), Reason: "must be an integer between 0 and 150"}
	r := httptest.NewRequest(http.MethodPost, "/api/v1/types/User/entities", http.NoBody)

	got := dto.NewErrorResponse(r, fmt.Errorf("constructing: %w", verr))
	assert.Equal(t, []dto.ErrorDetail{{Location: "body.age", Message: verr.Reason, Value: int64(-5)}}, got.Errors)

	for _, err := range []error{
		domain.ErrNotFound,
		fmt.Errorf("%w: User has no field nickname", entity.ErrUnknownField),
	} {
		assert.Nil(t, dto.NewErrorResponse(r, err).Errors, "%v", err)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/types/User/entities", http.NoBody)
	dto.WriteErrorResponse(rec, r, &domain.ValidationError{Field: "values", Reason: domain.MsgRequired})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, dto.ContentTypeProblem, rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, http.StatusBadRequest, body["status"], 0)

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	entry := errs[0].(map[string]any)
	assert.Equal(t, "body.values", entry["location"])
	assert.Equal(t, "is required", entry["message"])
	assert.NotContains(t, entry, "value", "nil value is omitted")
}

func TestWriteProblem(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	dto.WriteProblem(rec, httptest.NewRequest(http.MethodPut, "/api/v1/types", http.NoBody),
		http.StatusMethodNotAllowed, "PUT is not supported")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, dto.ContentTypeProblem, rec.Header().Get("Content-Type"))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Method Not Allowed", body.Title)
	assert.Equal(t, "PUT is not supported", body.Detail)
	assert.Empty(t, body.Errors)
}
